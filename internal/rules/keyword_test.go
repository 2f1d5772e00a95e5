package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

func TestKeywordMatchScoreBounds(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		requirement string
	}{
		{"full overlap", "python docker react", "python docker react"},
		{"no overlap", "haskell erlang", "python docker"},
		{"partial overlap", "python javascript", "python docker react"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := KeywordMatch{}.Evaluate(tt.candidate, tt.requirement, nil)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
		})
	}
}

// Matched and missing must partition the requirement's term set: no
// overlap, and their union covers every requirement term.
func TestKeywordMatchPartition(t *testing.T) {
	candidate := "Python developer with Docker and Kubernetes experience"
	requirement := "Python, Docker, Terraform and GraphQL required"

	result := KeywordMatch{}.Evaluate(candidate, requirement, nil)

	matched := result.Details["matched_terms"].([]string)
	matchedCount := result.Details["matched_count"].(int)
	requiredCount := result.Details["required_count"].(int)

	requirementTerms := terms.Extract(requirement, terms.DefaultExtractOptions()).List

	matchedSet := make(map[string]bool, len(matched))
	for _, m := range matched {
		matchedSet[m] = true
	}

	// Every requirement term falls in exactly one of the two lists.
	missingCount := 0
	for _, req := range requirementTerms.Terms {
		if !matchedSet[req.Text] {
			missingCount++
		}
	}

	assert.Equal(t, len(matched), matchedCount)
	assert.Equal(t, len(requirementTerms.Terms), requiredCount)
	assert.Equal(t, requiredCount, matchedCount+missingCount)

	assert.Contains(t, matched, "python")
	assert.Contains(t, matched, "docker")
}

func TestKeywordMatchStuffingScenario(t *testing.T) {
	stuffed := "JavaScript React Node.js JavaScript JavaScript JavaScript JavaScript JavaScript JavaScript JavaScript JavaScript"
	natural := "JavaScript React Node.js"
	requirement := "Looking for a JavaScript developer"

	stuffedResult := KeywordMatch{}.Evaluate(stuffed, requirement, nil)
	naturalResult := KeywordMatch{}.Evaluate(natural, requirement, nil)

	flagged := stuffedResult.Details["stuffed_terms"].([]StuffedTerm)
	require.NotEmpty(t, flagged, "expected stuffing to be flagged")
	var foundJS bool
	for _, f := range flagged {
		if f.Term == "javascript" {
			foundJS = true
			assert.Equal(t, 9, f.Frequency)
		}
	}
	assert.True(t, foundJS, "javascript must be among the stuffed terms")

	assert.Less(t, stuffedResult.Score, naturalResult.Score,
		"stuffed candidate must score strictly below its natural equivalent")

	var hasStuffingIssue bool
	for _, issue := range stuffedResult.Issues {
		if issue.Type == "keyword_stuffing" {
			hasStuffingIssue = true
			assert.Equal(t, types.SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, hasStuffingIssue)

	assert.Empty(t, naturalResult.Details["stuffed_terms"])
}

func TestKeywordMatchMissingIssue(t *testing.T) {
	result := KeywordMatch{}.Evaluate("python", "terraform kubernetes grafana", nil)

	var found bool
	for _, issue := range result.Issues {
		if issue.Type == "missing_keywords" {
			found = true
			assert.Equal(t, types.SeverityCritical, issue.Severity)
		}
	}
	assert.True(t, found, "expected a missing_keywords issue")
	assert.NotEmpty(t, result.Details["missing_terms"])
}
