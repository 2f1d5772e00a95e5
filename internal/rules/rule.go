// Package rules implements the five independent matching rules that
// produce the weighted sub-scores of the overall compatibility score.
// Every rule is a pure, stateless function of its inputs.
package rules

import (
	"github.com/jonathan/resume-scorer/internal/types"
)

// Canonical rule names, used as breakdown category keys.
const (
	NameKeywordMatch   = "keyword_match"
	NameSkillAlignment = "skill_alignment"
	NameFormatting     = "formatting"
	NameImpact         = "impact"
	NameReadability    = "readability"
)

// Rule scores a candidate document against a requirement document and
// returns a sub-score in [0,1] with structured diagnostics.
type Rule interface {
	Name() string
	Evaluate(candidateText, requirementText string, meta *types.DocumentMetadata) types.SubScoreResult
}

// All returns the five rules in their canonical order. Adding a rule here
// (plus a weight entry in the scoring config) is the full extension point.
func All() []Rule {
	return []Rule{
		KeywordMatch{},
		SkillAlignment{},
		Formatting{},
		Impact{},
		Readability{},
	}
}

// clamp01 bounds a raw score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
