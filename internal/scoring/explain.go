package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/rules"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Score-tier thresholds for the explanation lead sentence.
const (
	tierExcellent = 80.0
	tierGood      = 60.0
	tierModerate  = 40.0
)

// maxRecommendations bounds the synthesized recommendation list.
const maxRecommendations = 8

// buildExplanation produces the natural-language summary: a tier sentence
// followed by one highlight sentence per notable rule outcome.
func buildExplanation(overall float64, ruleList []rules.Rule, results []types.SubScoreResult) string {
	var sb strings.Builder

	switch {
	case overall >= tierExcellent:
		sb.WriteString(fmt.Sprintf("Excellent match (%.0f/100): the candidate document covers the requirement very well.", overall))
	case overall >= tierGood:
		sb.WriteString(fmt.Sprintf("Good match (%.0f/100): the candidate document covers most of the requirement.", overall))
	case overall >= tierModerate:
		sb.WriteString(fmt.Sprintf("Moderate match (%.0f/100): notable gaps remain between the documents.", overall))
	default:
		sb.WriteString(fmt.Sprintf("Low match (%.0f/100): the candidate document misses most of the requirement.", overall))
	}

	for i, rule := range ruleList {
		if sentence := highlightSentence(rule.Name(), results[i]); sentence != "" {
			sb.WriteString(" ")
			sb.WriteString(sentence)
		}
	}
	return sb.String()
}

// highlightSentence renders one rule-specific sentence, or "" when the
// rule outcome is unremarkable.
func highlightSentence(name string, r types.SubScoreResult) string {
	switch name {
	case rules.NameKeywordMatch:
		matched, _ := r.Details["matched_count"].(int)
		required, _ := r.Details["required_count"].(int)
		if required > 0 {
			return fmt.Sprintf("Keyword coverage: %d of %d requirement terms present.", matched, required)
		}
	case rules.NameSkillAlignment:
		if r.Score >= 0.9 {
			return "Skill alignment is near-complete across categories."
		}
		if r.Score < 0.4 {
			return "Skill alignment is weak; several required skills are not evidenced."
		}
	case rules.NameFormatting:
		if len(r.Issues) > 0 {
			return fmt.Sprintf("Formatting: %d machine-readability issues detected.", len(r.Issues))
		}
	case rules.NameImpact:
		if r.Score == 0 {
			return "No quantified achievements were found."
		}
	case rules.NameReadability:
		if r.Score < 0.6 {
			return "Readability and structure need attention."
		}
	}
	return ""
}

// buildRecommendations synthesizes a prioritized action list from each
// rule's issues: missing high-value terms first, then formatting issues,
// then quantification gaps, then everything else.
func buildRecommendations(ruleList []rules.Rule, results []types.SubScoreResult) []string {
	byRule := make(map[string]types.SubScoreResult, len(ruleList))
	for i, rule := range ruleList {
		byRule[rule.Name()] = results[i]
	}

	var recs []string
	seen := make(map[string]bool)
	add := func(rec string) {
		if rec != "" && !seen[rec] && len(recs) < maxRecommendations {
			seen[rec] = true
			recs = append(recs, rec)
		}
	}

	// 1. Missing high-value requirement terms.
	if kw, ok := byRule[rules.NameKeywordMatch]; ok {
		if missing, ok := kw.Details["missing_terms"].([]string); ok && len(missing) > 0 {
			n := len(missing)
			if n > 5 {
				missing = missing[:5]
			}
			add(fmt.Sprintf("Add the most important missing requirement terms where truthful: %s (%d missing in total).",
				strings.Join(missing, ", "), n))
		}
	}
	if sa, ok := byRule[rules.NameSkillAlignment]; ok {
		for _, issue := range sa.Issues {
			add(issue.Message)
		}
	}

	// 2. Formatting problems.
	if f, ok := byRule[rules.NameFormatting]; ok {
		for _, issue := range f.Issues {
			add(issue.Message)
		}
	}

	// 3. Quantification gaps.
	if imp, ok := byRule[rules.NameImpact]; ok {
		for _, issue := range imp.Issues {
			add(issue.Message)
		}
	}

	// 4. Remaining issues (readability, stuffing).
	if rd, ok := byRule[rules.NameReadability]; ok {
		for _, issue := range rd.Issues {
			add(issue.Message)
		}
	}
	if kw, ok := byRule[rules.NameKeywordMatch]; ok {
		for _, issue := range kw.Issues {
			if issue.Type == "keyword_stuffing" {
				add(issue.Message)
			}
		}
	}
	return recs
}
