package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		tokensA  []string
		tokensB  []string
		expected float64
	}{
		{
			name:     "identical documents",
			tokensA:  []string{"python", "docker", "react"},
			tokensB:  []string{"python", "docker", "react"},
			expected: 1.0,
		},
		{
			name:     "disjoint documents",
			tokensA:  []string{"python", "docker"},
			tokensB:  []string{"react", "angular"},
			expected: 0.0,
		},
		{
			name:     "empty left",
			tokensA:  nil,
			tokensB:  []string{"python"},
			expected: 0.0,
		},
		{
			name:     "empty both",
			tokensA:  nil,
			tokensB:  nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.tokensA, tt.tokensB), 1e-9)
		})
	}
}

func TestCosinePartialOverlapBounded(t *testing.T) {
	sim := Cosine(
		[]string{"python", "docker", "react"},
		[]string{"python", "terraform", "angular"},
	)
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

// Shared terms must keep non-zero weight: a strict log(N/df) would zero
// out every term both documents contain.
func TestVectorizeSharedTermsKeepWeight(t *testing.T) {
	vecA, vecB := Vectorize([]string{"python"}, []string{"python"})
	assert.Greater(t, vecA["python"], 0.0)
	assert.Greater(t, vecB["python"], 0.0)
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Vector{"a": 3, "b": 4}.Magnitude(), 1e-9)
	assert.Zero(t, Vector{}.Magnitude())
}
