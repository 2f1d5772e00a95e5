package scoring

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/rules"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Engine evaluates the five matching rules and aggregates their weighted
// sub-scores. Engines are safe for concurrent use: all state is immutable
// configuration except the bounded memo cache.
type Engine struct {
	rules    []rules.Rule
	weights  Weights
	cache    *resultCache
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default rule weights. The weights must have
// been validated by the caller.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithParallelRules evaluates the five rules concurrently. Rules are
// independent, so this changes timing only, never output.
func WithParallelRules(parallel bool) Option {
	return func(e *Engine) { e.parallel = parallel }
}

// WithCache enables the bounded result memo cache.
func WithCache(capacity int) Option {
	return func(e *Engine) { e.cache = newResultCache(capacity) }
}

// NewEngine builds an Engine with the canonical rule set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:   rules.All(),
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score evaluates the candidate document against the requirement document
// and returns a fully populated breakdown. It never returns an error:
// missing input yields a zero-valued breakdown with an explanatory
// message, and a misbehaving rule is degraded to its floor score.
func (e *Engine) Score(candidateText, requirementText string, meta *types.DocumentMetadata) types.ScoreBreakdown {
	if strings.TrimSpace(candidateText) == "" || strings.TrimSpace(requirementText) == "" {
		return e.emptyInputBreakdown(candidateText, requirementText)
	}

	var key uint64
	if e.cache != nil {
		key = fingerprint(candidateText, requirementText)
		if cached, ok := e.cache.get(key); ok {
			cached.GeneratedAt = time.Now().UTC()
			return cached
		}
	}

	results := e.evaluate(candidateText, requirementText, meta)

	categories := make(map[string]types.CategoryScore, len(e.rules))
	overall := 0.0
	for i, rule := range e.rules {
		weight := e.weights.ForRule(rule.Name())
		weighted := results[i].Score * weight * 100
		overall += weighted
		categories[rule.Name()] = types.CategoryScore{
			RawScore:       results[i].Score,
			WeightPercent:  weight * 100,
			WeightedPoints: round2(weighted),
			Details:        results[i].Details,
		}
	}

	breakdown := types.ScoreBreakdown{
		OverallScore:    round2(clampScore(overall)),
		Categories:      categories,
		Explanation:     buildExplanation(clampScore(overall), e.rules, results),
		Recommendations: buildRecommendations(e.rules, results),
		GeneratedAt:     time.Now().UTC(),
	}

	if e.cache != nil {
		e.cache.put(key, breakdown)
	}
	return breakdown
}

// evaluate runs every rule, optionally in parallel, collecting results in
// rule order. A panicking rule contributes its floor score plus a
// diagnostic warning instead of aborting the invocation.
func (e *Engine) evaluate(candidateText, requirementText string, meta *types.DocumentMetadata) []types.SubScoreResult {
	results := make([]types.SubScoreResult, len(e.rules))

	evalOne := func(i int) {
		results[i] = safeEvaluate(e.rules[i], candidateText, requirementText, meta)
	}

	if !e.parallel {
		for i := range e.rules {
			evalOne(i)
		}
		return results
	}

	var g errgroup.Group
	for i := range e.rules {
		g.Go(func() error {
			evalOne(i)
			return nil
		})
	}
	// Rules never return errors; the group is used purely as a join.
	_ = g.Wait()
	return results
}

// safeEvaluate isolates one rule invocation so a single rule's failure
// never blocks the other four.
func safeEvaluate(rule rules.Rule, candidateText, requirementText string, meta *types.DocumentMetadata) (result types.SubScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("rule %s panicked: %v", rule.Name(), r)
			result = types.SubScoreResult{
				Score:    0,
				Warnings: []string{fmt.Sprintf("rule %s failed and was scored at its floor: %v", rule.Name(), r)},
			}
		}
	}()
	result = rule.Evaluate(candidateText, requirementText, meta)
	result.Score = clamp01(result.Score)
	return result
}

// emptyInputBreakdown returns the zero-valued, fully populated breakdown
// mandated for missing input, so callers can render a result
// unconditionally.
func (e *Engine) emptyInputBreakdown(candidateText, requirementText string) types.ScoreBreakdown {
	var what string
	switch {
	case strings.TrimSpace(candidateText) == "" && strings.TrimSpace(requirementText) == "":
		what = "both the candidate document and the requirement document are missing"
	case strings.TrimSpace(candidateText) == "":
		what = "the candidate document is missing or empty"
	default:
		what = "the requirement document is missing or empty"
	}

	categories := make(map[string]types.CategoryScore, len(e.rules))
	for _, rule := range e.rules {
		categories[rule.Name()] = types.CategoryScore{
			RawScore:      0,
			WeightPercent: e.weights.ForRule(rule.Name()) * 100,
		}
	}
	return types.ScoreBreakdown{
		OverallScore: 0,
		Categories:   categories,
		Explanation:  fmt.Sprintf("No score could be computed: %s.", what),
		Recommendations: []string{
			"Provide both a candidate document and a requirement document to compute a score.",
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
