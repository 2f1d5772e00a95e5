// Package scoring combines the five rule sub-scores into one explainable
// compatibility score.
package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-scorer/internal/rules"
)

// weightSumTolerance is the allowed floating-point drift when checking
// that weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights assigns each rule its share of the overall score. Immutable
// after construction; pass a fresh value to reconfigure.
type Weights struct {
	KeywordMatch   float64 `json:"keyword_match" validate:"gte=0,lte=1"`
	SkillAlignment float64 `json:"skill_alignment" validate:"gte=0,lte=1"`
	Formatting     float64 `json:"formatting" validate:"gte=0,lte=1"`
	Impact         float64 `json:"impact" validate:"gte=0,lte=1"`
	Readability    float64 `json:"readability" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard rule weighting.
func DefaultWeights() Weights {
	return Weights{
		KeywordMatch:   0.35,
		SkillAlignment: 0.25,
		Formatting:     0.20,
		Impact:         0.10,
		Readability:    0.10,
	}
}

var validate = validator.New()

// Validate checks every weight is in [0,1] and the weights sum to 1.0.
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}
	sum := w.KeywordMatch + w.SkillAlignment + w.Formatting + w.Impact + w.Readability
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// ForRule returns the weight assigned to a rule name.
func (w Weights) ForRule(name string) float64 {
	switch name {
	case rules.NameKeywordMatch:
		return w.KeywordMatch
	case rules.NameSkillAlignment:
		return w.SkillAlignment
	case rules.NameFormatting:
		return w.Formatting
	case rules.NameImpact:
		return w.Impact
	case rules.NameReadability:
		return w.Readability
	default:
		return 0
	}
}
