package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		term     string
		expected types.Category
	}{
		// Dictionary membership
		{"python", types.CategoryHard},
		{"javascript", types.CategoryHard},
		{"postgresql", types.CategoryHard},
		{"docker", types.CategoryTool},
		{"kubernetes", types.CategoryTool},
		{"jenkins", types.CategoryTool},
		{"leadership", types.CategorySoft},
		{"communication", types.CategorySoft},

		// Multi-word dictionary entries match through Normalize's title
		// casing regardless of how the data file cases them.
		{Normalize("spring boot"), types.CategoryHard},
		{Normalize("sql server"), types.CategoryHard},
		{Normalize("machine learning"), types.CategoryHard},
		{Normalize("object-oriented programming"), types.CategoryHard},
		{Normalize("aws lambda"), types.CategoryTool},
		{Normalize("github actions"), types.CategoryTool},
		{Normalize("problem solving"), types.CategorySoft},
		{Normalize("software engineer"), types.CategoryRole},

		// Heuristic suffixes
		{"webframework", types.CategoryHard},
		{"observability platform", types.CategoryTool},
		{"staff engineer", types.CategoryRole},
		{"backend developer", types.CategoryRole},

		// Structural fallback: bare alphabetic word reads as technology
		{"fastify", types.CategoryHard},

		// Unclassifiable
		{"", types.CategoryOther},
		{"123", types.CategoryOther},
		{"xyz", types.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.term))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, types.CategoryHard, Classify("python"))
	}
}
