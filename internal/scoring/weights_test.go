package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/rules"
)

func TestDefaultWeightsValid(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{
			name:    "defaults",
			weights: DefaultWeights(),
			wantErr: false,
		},
		{
			name: "uniform",
			weights: Weights{
				KeywordMatch:   0.2,
				SkillAlignment: 0.2,
				Formatting:     0.2,
				Impact:         0.2,
				Readability:    0.2,
			},
			wantErr: false,
		},
		{
			name: "does not sum to one",
			weights: Weights{
				KeywordMatch:   0.5,
				SkillAlignment: 0.5,
				Formatting:     0.5,
				Impact:         0,
				Readability:    0,
			},
			wantErr: true,
		},
		{
			name: "negative weight",
			weights: Weights{
				KeywordMatch:   -0.1,
				SkillAlignment: 0.4,
				Formatting:     0.3,
				Impact:         0.2,
				Readability:    0.2,
			},
			wantErr: true,
		},
		{
			name:    "all zero",
			weights: Weights{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeightsForRule(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.35, w.ForRule(rules.NameKeywordMatch))
	assert.Equal(t, 0.25, w.ForRule(rules.NameSkillAlignment))
	assert.Equal(t, 0.20, w.ForRule(rules.NameFormatting))
	assert.Equal(t, 0.10, w.ForRule(rules.NameImpact))
	assert.Equal(t, 0.10, w.ForRule(rules.NameReadability))
	assert.Zero(t, w.ForRule("unknown"))
}

func TestWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.KeywordMatch + w.SkillAlignment + w.Formatting + w.Impact + w.Readability
	assert.InDelta(t, 1.0, sum, 1e-9)
}
