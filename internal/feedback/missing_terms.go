package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxMissingSuggestions bounds how many missing-term suggestions one call
// emits; only the highest-value gaps are worth surfacing.
const maxMissingSuggestions = 5

// MissingTerms surfaces high-value requirement terms absent from the
// candidate document, ranked by their frequency in the requirement.
type MissingTerms struct{}

// Name implements Detector.
func (MissingTerms) Name() string { return "missing_terms" }

// Detect implements Detector.
func (MissingTerms) Detect(candidateText, requirementText string, _ *types.DocumentMetadata) []types.Suggestion {
	opts := terms.DefaultExtractOptions()
	candidate := terms.Extract(candidateText, opts).List
	requirement := terms.Extract(requirementText, opts).List

	var out []types.Suggestion
	for _, req := range requirement.Terms {
		if len(out) >= maxMissingSuggestions {
			break
		}
		// Only skill-bearing categories are worth a suggestion.
		if req.Category == types.CategoryOther || req.Category == types.CategoryRole {
			continue
		}
		if candidate.Contains(req.Text) {
			continue
		}

		severity := types.SeverityImprovement
		if req.Frequency >= 3 {
			severity = types.SeverityCritical
		} else if req.Frequency >= 2 {
			severity = types.SeverityWarning
		}
		out = append(out, types.Suggestion{
			Category:         CategoryKeywords,
			Severity:         severity,
			Title:            fmt.Sprintf("Missing term: %s", req.Text),
			Message:          fmt.Sprintf("The requirement mentions %q %d time(s) but it does not appear in your document.", req.Text, req.Frequency),
			ActionableAdvice: fmt.Sprintf("If you have genuine experience with %s, name it explicitly in your %s section.", req.Text, sectionFor(req.Category)),
			Metadata: map[string]any{
				"term":      req.Text,
				"frequency": req.Frequency,
				"category":  string(req.Category),
			},
		})
	}
	return out
}

// sectionFor suggests the document section where a term of the given
// category belongs.
func sectionFor(cat types.Category) string {
	switch cat {
	case types.CategoryHard, types.CategoryTool:
		return "skills"
	case types.CategorySoft:
		return "experience"
	default:
		return "summary"
	}
}

// bulletLines returns trimmed candidate lines that look like bullet
// items, with their markers stripped. Shared by the line-level detectors.
func bulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, marker := range []string{"- ", "* ", "• ", "● ", "◦ ", "> "} {
			if strings.HasPrefix(trimmed, marker) {
				out = append(out, strings.TrimSpace(strings.TrimPrefix(trimmed, marker)))
				break
			}
		}
	}
	return out
}
