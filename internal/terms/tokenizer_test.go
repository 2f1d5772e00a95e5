package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     TokenizerOptions
		expected []string
	}{
		{
			name:     "basic split and lowercase",
			input:    "Python, Django and PostgreSQL",
			opts:     TokenizerOptions{},
			expected: []string{"python", "django", "and", "postgresql"},
		},
		{
			name:     "keeps technical punctuation",
			input:    "C++ and Node.js experience",
			opts:     TokenizerOptions{},
			expected: []string{"c++", "and", "node.js", "experience"},
		},
		{
			name:     "strips trailing sentence punctuation",
			input:    "Built services in Go.",
			opts:     TokenizerOptions{},
			expected: []string{"built", "services"},
		},
		{
			name:     "drops tokens shorter than three chars",
			input:    "a an of Go C#",
			opts:     TokenizerOptions{},
			expected: nil,
		},
		{
			name:     "keeps short synonym aliases",
			input:    "js ML py",
			opts:     TokenizerOptions{},
			expected: []string{"js", "ml", "py"},
		},
		{
			// "experience" is resume-filler noise, removed along with the
			// stopwords.
			name:     "removes stopwords when asked",
			input:    "experience with the python language",
			opts:     TokenizerOptions{RemoveStopwords: true},
			expected: []string{"python", "language"},
		},
		{
			name:     "empty input",
			input:    "   \n\t ",
			opts:     TokenizerOptions{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input, tt.opts))
		})
	}
}

func TestTokenizeNGrams(t *testing.T) {
	tokens := Tokenize("machine learning engineer", TokenizerOptions{NGrams: true})

	assert.Contains(t, tokens, "machine")
	assert.Contains(t, tokens, "machine learning")
	assert.Contains(t, tokens, "learning engineer")
	assert.Contains(t, tokens, "machine learning engineer")
	// Trigrams must be built over the original words, never over
	// synthetic bigrams.
	assert.NotContains(t, tokens, "machine machine learning")
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("and"))
	assert.False(t, IsStopword("python"))
}
