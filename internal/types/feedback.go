package types

import "time"

// Suggestion is an actionable improvement emitted by a feedback detector.
// Suggestions are derived per call and never persisted.
type Suggestion struct {
	Category         string         `json:"category"`
	Severity         Severity       `json:"severity"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	ActionableAdvice string         `json:"actionable_advice"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// FeedbackResult is the merged, prioritized output of all detectors.
// Suggestions is the flat sorted list; BySeverity partitions the same
// suggestions by severity.
type FeedbackResult struct {
	Suggestions []Suggestion              `json:"suggestions"`
	BySeverity  map[Severity][]Suggestion `json:"by_severity"`
	GeneratedAt time.Time                 `json:"generated_at"`
}
