package feedback

import (
	"github.com/jonathan/resume-scorer/internal/rules"
	"github.com/jonathan/resume-scorer/internal/types"
)

// FormatViolations re-surfaces the formatting rule's findings as
// standalone suggestions, so feedback consumers see them without reading
// the score breakdown.
type FormatViolations struct{}

// Name implements Detector.
func (FormatViolations) Name() string { return "format_violations" }

// Detect implements Detector.
func (FormatViolations) Detect(candidateText, requirementText string, meta *types.DocumentMetadata) []types.Suggestion {
	result := rules.Formatting{}.Evaluate(candidateText, requirementText, meta)

	out := make([]types.Suggestion, 0, len(result.Issues))
	for _, issue := range result.Issues {
		out = append(out, types.Suggestion{
			Category:         CategoryFormatting,
			Severity:         issue.Severity,
			Title:            formatTitle(issue.Type),
			Message:          issue.Message,
			ActionableAdvice: formatAdvice(issue.Type),
			Metadata:         map[string]any{"issue_type": issue.Type, "penalty": issue.Penalty},
		})
	}
	return out
}

func formatTitle(issueType string) string {
	switch issueType {
	case "nonstandard_punctuation":
		return "Decorative punctuation"
	case "tabular_content":
		return "Tabular layout"
	case "repeated_markers":
		return "Page furniture"
	case "missing_contact":
		return "Contact information"
	case "mixed_bullets":
		return "Inconsistent bullets"
	case "unsupported_format":
		return "Unreliable source format"
	default:
		return "Formatting issue"
	}
}

func formatAdvice(issueType string) string {
	switch issueType {
	case "nonstandard_punctuation":
		return "Replace decorative symbols with plain punctuation; parsers read plain text best."
	case "tabular_content":
		return "Convert tables to plain bullet lists; columns are lost in extraction."
	case "repeated_markers":
		return "Export without headers, footers and page numbers."
	case "missing_contact":
		return "Put an email address and a phone number near the top of the document."
	case "mixed_bullets":
		return "Use one bullet marker style throughout."
	case "unsupported_format":
		return "Submit a text-based PDF or DOCX instead."
	default:
		return "Simplify the formatting."
	}
}
