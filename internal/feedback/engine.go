// Package feedback runs independent suggestion detectors over a candidate
// document and merges their output into one prioritized list. It is a
// parallel consumer of the same term data the scoring rules use, but its
// suggestions are distinct from the scoring breakdown.
package feedback

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Suggestion categories, in descending importance for tie-breaking.
const (
	CategoryKeywords       = "keywords"
	CategoryLanguage       = "language"
	CategoryQuantification = "quantification"
	CategoryWordChoice     = "word_choice"
	CategoryFormatting     = "formatting"
)

// categoryRank orders categories for sorting (lower sorts first).
var categoryRank = map[string]int{
	CategoryKeywords:       0,
	CategoryLanguage:       1,
	CategoryQuantification: 2,
	CategoryWordChoice:     3,
	CategoryFormatting:     4,
}

// Detector inspects the documents and emits zero or more suggestions.
// Detectors are pure and independent of one another.
type Detector interface {
	Name() string
	Detect(candidateText, requirementText string, meta *types.DocumentMetadata) []types.Suggestion
}

// Engine runs a fixed detector list and merges the results.
type Engine struct {
	detectors []Detector
}

// NewEngine builds an Engine with the canonical five detectors.
func NewEngine() *Engine {
	return &Engine{detectors: []Detector{
		MissingTerms{},
		WeakVerbs{},
		Unquantified{},
		OverusedWords{},
		FormatViolations{},
	}}
}

// Feedback runs every detector, merges, sorts by severity then category
// importance then title, and returns both the flat prioritized list and a
// severity-partitioned view. Empty input yields an empty result, never an
// error.
func (e *Engine) Feedback(candidateText, requirementText string, meta *types.DocumentMetadata) types.FeedbackResult {
	if strings.TrimSpace(candidateText) == "" {
		return types.FeedbackResult{
			BySeverity:  map[types.Severity][]types.Suggestion{},
			GeneratedAt: time.Now().UTC(),
		}
	}

	var all []types.Suggestion
	for _, d := range e.detectors {
		all = append(all, d.Detect(candidateText, requirementText, meta)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return types.MoreSevere(all[i].Severity, all[j].Severity)
		}
		if categoryRank[all[i].Category] != categoryRank[all[j].Category] {
			return categoryRank[all[i].Category] < categoryRank[all[j].Category]
		}
		return all[i].Title < all[j].Title
	})

	bySeverity := make(map[types.Severity][]types.Suggestion)
	for _, s := range all {
		bySeverity[s.Severity] = append(bySeverity[s.Severity], s)
	}

	return types.FeedbackResult{
		Suggestions: all,
		BySeverity:  bySeverity,
		GeneratedAt: time.Now().UTC(),
	}
}
