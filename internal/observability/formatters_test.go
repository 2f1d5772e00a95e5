package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	breakdown := &types.ScoreBreakdown{
		OverallScore: 72.5,
		Explanation:  "Good match with room to improve",
		Categories: map[string]types.CategoryScore{
			// WeightPercent carries percents, as the orchestrator stores
			// them.
			"keyword_match":   {RawScore: 0.8, WeightPercent: 35, WeightedPoints: 28.0},
			"skill_alignment": {RawScore: 0.6, WeightPercent: 25, WeightedPoints: 15.0},
		},
		Recommendations: []string{"Add missing keywords", "Quantify achievements"},
	}

	p.PrintBreakdown(breakdown)
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "Good match")
	assert.Contains(t, output, "Keyword Match")
	assert.Contains(t, output, "Skill Alignment")
	assert.Contains(t, output, "x 35%")
	assert.Contains(t, output, "x 25%")
	assert.Contains(t, output, "Add missing keywords")
}

func TestPrintBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintFeedback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.FeedbackResult{
		Suggestions: []types.Suggestion{
			{Severity: types.SeverityCritical, Title: "Missing required skill: python", ActionableAdvice: "Add python experience"},
			{Severity: types.SeverityWarning, Title: "Weak verb: worked", ActionableAdvice: "Use engineered instead"},
		},
		BySeverity: map[types.Severity][]types.Suggestion{
			types.SeverityCritical: {
				{Severity: types.SeverityCritical, Title: "Missing required skill: python", ActionableAdvice: "Add python experience"},
			},
			types.SeverityWarning: {
				{Severity: types.SeverityWarning, Title: "Weak verb: worked", ActionableAdvice: "Use engineered instead"},
			},
		},
	}

	p.PrintFeedback(result)
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, output, "CRITICAL (1)")
	assert.Contains(t, output, "WARNING (1)")
	assert.Contains(t, output, "Missing required skill")
}

func TestPrintFeedback_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeedback(&types.FeedbackResult{})
	p.PrintFeedback(nil)

	assert.Empty(t, buf.String())
}

func TestPrintTerms(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	terms := types.TermList{Terms: []types.Term{
		{Text: "python", Category: types.CategoryHard, Frequency: 3},
		{Text: "docker", Category: types.CategoryTool, Frequency: 1},
	}}

	p.PrintTerms("EXTRACTED TERMS", terms)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED TERMS")
	assert.Contains(t, output, "python (x3)")
	assert.Contains(t, output, "docker (x1)")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Keyword Match", label("keyword_match"))
	assert.Equal(t, "Impact", label("impact"))
}
