package types

import "time"

// Severity grades an issue or suggestion.
type Severity string

const (
	// SeverityCritical marks problems that materially hurt the score.
	SeverityCritical Severity = "critical"
	// SeverityWarning marks problems worth fixing soon.
	SeverityWarning Severity = "warning"
	// SeverityImprovement marks optional polish.
	SeverityImprovement Severity = "improvement"
)

// severityRank orders severities for sorting (lower sorts first).
func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityImprovement:
		return 2
	default:
		return 3
	}
}

// MoreSevere reports whether a outranks b.
func MoreSevere(a, b Severity) bool {
	return severityRank(a) < severityRank(b)
}

// Issue is a single structured problem reported by a rule.
type Issue struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Penalty  float64  `json:"penalty"`
}

// SubScoreResult is the output of one matching rule. Score is in [0,1].
// Details carries rule-specific diagnostics keyed by name.
type SubScoreResult struct {
	Score    float64        `json:"score"`
	Details  map[string]any `json:"details,omitempty"`
	Issues   []Issue        `json:"issues,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// CategoryScore is one weighted entry of the score breakdown.
type CategoryScore struct {
	RawScore       float64        `json:"raw_score"`
	WeightPercent  float64        `json:"weight_percent"`
	WeightedPoints float64        `json:"weighted_points"`
	Details        map[string]any `json:"details,omitempty"`
}

// ScoreBreakdown is the full result of a scoring invocation.
// OverallScore is in [0,100], rounded to two decimals.
type ScoreBreakdown struct {
	OverallScore    float64                  `json:"overall_score"`
	Categories      map[string]CategoryScore `json:"categories"`
	Explanation     string                   `json:"explanation"`
	Recommendations []string                 `json:"recommendations"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// DocumentMetadata optionally accompanies a candidate document.
// Format is the source format tag (e.g. "pdf", "docx", "txt").
type DocumentMetadata struct {
	Format    string `json:"format,omitempty"`
	Title     string `json:"title,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}
