package rules

import (
	"fmt"

	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Intra-rule category weights (hard/tool/soft must sum to 1.0). The
// 60/25/15 rubric is used so soft skills keep a visible share.
const (
	hardCategoryWeight = 0.60
	toolCategoryWeight = 0.25
	softCategoryWeight = 0.15

	// completenessBonus is added (in raw points, pre-normalization) when
	// every required hard and tool term is covered.
	completenessBonus = 4.0
)

// CategoryMatch summarizes skill coverage for one category.
type CategoryMatch struct {
	Ratio   float64  `json:"ratio"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// SkillAlignment measures per-category overlap between candidate and
// requirement skill sets.
type SkillAlignment struct{}

// Name implements Rule.
func (SkillAlignment) Name() string { return NameSkillAlignment }

// Evaluate implements Rule.
func (SkillAlignment) Evaluate(candidateText, requirementText string, _ *types.DocumentMetadata) types.SubScoreResult {
	opts := terms.DefaultExtractOptions()
	candidate := terms.Extract(candidateText, opts).List
	requirement := terms.Extract(requirementText, opts).List

	matches := map[types.Category]CategoryMatch{
		types.CategoryHard: matchCategory(&candidate, &requirement, types.CategoryHard),
		types.CategoryTool: matchCategory(&candidate, &requirement, types.CategoryTool),
		types.CategorySoft: matchCategory(&candidate, &requirement, types.CategorySoft),
	}

	raw := 100 * (hardCategoryWeight*matches[types.CategoryHard].Ratio +
		toolCategoryWeight*matches[types.CategoryTool].Ratio +
		softCategoryWeight*matches[types.CategorySoft].Ratio)

	complete := len(matches[types.CategoryHard].Missing) == 0 &&
		len(matches[types.CategoryTool].Missing) == 0 &&
		(len(matches[types.CategoryHard].Matched) > 0 || len(matches[types.CategoryTool].Matched) > 0)
	if complete {
		raw += completenessBonus
	}

	result := types.SubScoreResult{
		Score: clamp01(raw / 100),
		Details: map[string]any{
			"hard":               matches[types.CategoryHard],
			"tool":               matches[types.CategoryTool],
			"soft":               matches[types.CategorySoft],
			"completeness_bonus": complete,
		},
	}

	for _, cat := range []types.Category{types.CategoryHard, types.CategoryTool} {
		m := matches[cat]
		if len(m.Missing) == 0 {
			continue
		}
		severity := types.SeverityWarning
		if cat == types.CategoryHard {
			severity = types.SeverityCritical
		}
		result.Issues = append(result.Issues, types.Issue{
			Type:     fmt.Sprintf("missing_%s_skills", cat),
			Severity: severity,
			Message:  fmt.Sprintf("%d required %s-skill terms are not evidenced, e.g. %q", len(m.Missing), cat, m.Missing[0]),
			Penalty:  1 - m.Ratio,
		})
	}
	return result
}

// matchCategory computes a Jaccard-style ratio (common / union) for one
// category. A category absent from the requirement scores a neutral 1.0 so
// it cannot drag the rule down; Missing lists requirement-side gaps only.
func matchCategory(candidate, requirement *types.TermList, cat types.Category) CategoryMatch {
	required := requirement.ByCategory(cat)
	if len(required) == 0 {
		return CategoryMatch{Ratio: 1.0}
	}

	union := make(map[string]bool, len(required))
	m := CategoryMatch{}
	for _, req := range required {
		union[req.Text] = true
		if candidate.Contains(req.Text) {
			m.Matched = append(m.Matched, req.Text)
		} else {
			m.Missing = append(m.Missing, req.Text)
		}
	}
	for _, t := range candidate.ByCategory(cat) {
		union[t.Text] = true
	}
	m.Ratio = float64(len(m.Matched)) / float64(len(union))
	return m
}
