package terms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestExtractMergesSynonymVariants(t *testing.T) {
	// "js", "javascript" and "JavaScript" are the same term after
	// normalization and must be counted together.
	result := Extract("js javascript JavaScript react", DefaultExtractOptions())

	var jsTerm *types.Term
	for i, term := range result.List.Terms {
		if term.Text == "javascript" {
			jsTerm = &result.List.Terms[i]
		}
	}
	require.NotNil(t, jsTerm, "expected a merged javascript term")
	assert.Equal(t, 3, jsTerm.Frequency)
	assert.Equal(t, types.CategoryHard, jsTerm.Category)
}

func TestExtractOrdering(t *testing.T) {
	result := Extract("python python python docker docker react", ExtractOptions{
		RemoveStopwords: true,
		MinFrequency:    1,
		MaxKeywords:     10,
	})

	terms := result.List.Terms
	require.NotEmpty(t, terms)
	assert.Equal(t, "python", terms[0].Text)
	for i := 1; i < len(terms); i++ {
		prev, cur := terms[i-1], terms[i]
		ok := prev.Frequency > cur.Frequency ||
			(prev.Frequency == cur.Frequency && prev.Text < cur.Text)
		assert.True(t, ok, "terms must be ordered by frequency desc, text asc: %q before %q", prev.Text, cur.Text)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "python docker kubernetes react leadership communication python docker"
	first := Extract(text, DefaultExtractOptions())
	for i := 0; i < 3; i++ {
		assert.Equal(t, first.List, Extract(text, DefaultExtractOptions()).List)
	}
}

func TestExtractRespectsBounds(t *testing.T) {
	var sb strings.Builder
	for _, w := range []string{"python", "docker", "react", "kubernetes", "terraform", "graphql"} {
		sb.WriteString(w + " ")
	}
	result := Extract(sb.String(), ExtractOptions{MaxKeywords: 3, MinFrequency: 1})
	assert.Len(t, result.List.Terms, 3)

	result = Extract("python python docker", ExtractOptions{MinFrequency: 2, MaxKeywords: 10})
	assert.Equal(t, []string{"python"}, result.List.Texts())
}

func TestExtractEmptyInput(t *testing.T) {
	result := Extract("", DefaultExtractOptions())
	assert.Empty(t, result.List.Terms)
}

func TestExtractProximity(t *testing.T) {
	result := Extract("python docker python docker python docker", ExtractOptions{
		MinFrequency:  1,
		MaxKeywords:   10,
		WithProximity: true,
	})
	require.NotEmpty(t, result.Proximity)

	pair := result.Proximity[0]
	assert.NotEqual(t, pair.TermA, pair.TermB)
	assert.GreaterOrEqual(t, pair.CoOccurrences, 1)
	assert.GreaterOrEqual(t, pair.MinDistance, 1)
}
