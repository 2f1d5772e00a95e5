package rules

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Quantification pattern table. Each pattern is a named, independently
// testable extractor; keep patterns as data, not control flow.
var metricPatterns = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"percentage", regexp.MustCompile(`\d+(\.\d+)?\s*%|\d+(\.\d+)?\s*percent`)},
	{"currency", regexp.MustCompile(`[$€£]\s*\d[\d,.]*\s*(k|m|b|million|billion|thousand)?|\d[\d,.]*\s*(dollars|euros|usd|eur)`)},
	{"scale", regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s*(users|customers|clients|employees|engineers|developers|people|members|team members|requests|transactions|downloads|records|servers|services|stores|locations)\b`)},
	{"time_reduction", regexp.MustCompile(`(?i)\b(reduced|cut|decreased|saved|shortened)\b[^.\n]{0,60}\b(time|hours?|days?|weeks?|minutes?|latency|duration)\b`)},
}

// impactStatementRe matches outcome-oriented phrasing independent of
// numeric content.
var impactStatementRe = regexp.MustCompile(`(?i)\b(led\s+(a\s+)?team\s+of|achieved|resulted\s+in|delivered|drove|spearheaded|increased|improved|launched|generated)\b`)

// Step thresholds mapping distinct metric count to raw points.
var impactSteps = []struct {
	MinMatches int
	Points     float64
}{
	{11, 100},
	{6, 85},
	{3, 60},
	{1, 30},
}

// maxImpactBonus caps the additive bonus for impact-statement phrasing.
const maxImpactBonus = 10.0

// Impact scores the density of quantified, outcome-oriented achievements.
type Impact struct{}

// Name implements Rule.
func (Impact) Name() string { return NameImpact }

// Evaluate implements Rule.
func (Impact) Evaluate(candidateText, _ string, _ *types.DocumentMetadata) types.SubScoreResult {
	byKind := make(map[string]int, len(metricPatterns))
	totalMetrics := 0
	for _, p := range metricPatterns {
		matches := p.Pattern.FindAllString(candidateText, -1)
		byKind[p.Name] = len(matches)
		totalMetrics += len(matches)
	}
	statements := len(impactStatementRe.FindAllString(candidateText, -1))

	details := map[string]any{
		"metrics_by_kind":   byKind,
		"metric_count":      totalMetrics,
		"impact_statements": statements,
	}

	// No quantification and no impact phrasing at all: hard zero.
	if totalMetrics == 0 && statements == 0 {
		return types.SubScoreResult{
			Score:   0,
			Details: details,
			Issues: []types.Issue{{
				Type:     "no_quantification",
				Severity: types.SeverityCritical,
				Message:  "no quantified results or impact statements found; add numbers to your achievements",
				Penalty:  1,
			}},
		}
	}

	points := 0.0
	for _, step := range impactSteps {
		if totalMetrics >= step.MinMatches {
			points = step.Points
			break
		}
	}

	bonus := float64(statements) * 2
	if bonus > maxImpactBonus {
		bonus = maxImpactBonus
	}
	points += bonus
	if points > 100 {
		points = 100
	}

	result := types.SubScoreResult{Score: points / 100, Details: details}
	if totalMetrics < 3 {
		result.Issues = append(result.Issues, types.Issue{
			Type:     "low_quantification",
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("only %d quantified results found; aim for at least three", totalMetrics),
			Penalty:  (100 - points) / 100,
		})
	}
	return result
}
