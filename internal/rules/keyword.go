package rules

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// Blend of term-presence match and TF-IDF cosine similarity.
	baseMatchWeight = 0.7
	cosineSimWeight = 0.3
	// A term consuming more than this share of the candidate's words is
	// a stuffing suspect.
	stuffingRatio = 0.05
	// stuffingFloor keeps short documents from false-positiving: a term
	// needs at least this many occurrences to be flagged regardless of
	// ratio.
	stuffingFloor = 4
	// maxStuffingPenalty is the largest multiplicative deduction applied
	// for term stuffing. Sized so a stuffed document always scores below
	// its natural-frequency equivalent even when repetition inflates the
	// cosine term.
	maxStuffingPenalty = 0.30
	// maxMissingReported bounds the missing-terms list in the details
	// payload.
	maxMissingReported = 20
)

// StuffedTerm describes one over-repeated candidate term.
type StuffedTerm struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Ratio     float64 `json:"ratio"`
}

// KeywordMatch blends requirement-term coverage with TF-IDF cosine
// similarity and penalizes term stuffing.
type KeywordMatch struct{}

// Name implements Rule.
func (KeywordMatch) Name() string { return NameKeywordMatch }

// Evaluate implements Rule.
func (KeywordMatch) Evaluate(candidateText, requirementText string, _ *types.DocumentMetadata) types.SubScoreResult {
	candTokens := terms.Tokenize(candidateText, terms.TokenizerOptions{RemoveStopwords: true})
	reqTokens := terms.Tokenize(requirementText, terms.TokenizerOptions{RemoveStopwords: true})
	cosine := similarity.Cosine(candTokens, reqTokens)

	opts := terms.DefaultExtractOptions()
	candidate := terms.Extract(candidateText, opts).List
	requirement := terms.Extract(requirementText, opts).List

	// Partition the requirement's terms into matched and missing; missing
	// terms keep their requirement-side frequency as an importance rank.
	var matched []string
	var missing []types.Term
	for _, req := range requirement.Terms {
		if candidate.Contains(req.Text) {
			matched = append(matched, req.Text)
		} else {
			missing = append(missing, req)
		}
	}

	baseMatch := 0.0
	if len(requirement.Terms) > 0 {
		baseMatch = float64(len(matched)) / float64(len(requirement.Terms))
	}
	combined := baseMatchWeight*baseMatch + cosineSimWeight*cosine

	stuffed, stuffingScore := detectStuffing(candidateText, &candidate)
	penalty := stuffingScore * maxStuffingPenalty
	score := clamp01(combined * (1 - penalty))

	result := types.SubScoreResult{
		Score: score,
		Details: map[string]any{
			"base_match":     baseMatch,
			"cosine":         cosine,
			"matched_terms":  matched,
			"missing_terms":  topMissing(missing),
			"stuffed_terms":  stuffed,
			"stuffing_score": stuffingScore,
			"matched_count":  len(matched),
			"required_count": len(requirement.Terms),
		},
	}

	for _, s := range stuffed {
		result.Issues = append(result.Issues, types.Issue{
			Type:     "keyword_stuffing",
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("%q appears %d times (%.0f%% of the document); repetition at this rate reads as keyword stuffing", s.Term, s.Frequency, s.Ratio*100),
			Penalty:  s.Ratio,
		})
	}
	if len(missing) > 0 {
		top := missing[0]
		result.Issues = append(result.Issues, types.Issue{
			Type:     "missing_keywords",
			Severity: types.SeverityCritical,
			Message:  fmt.Sprintf("%d requirement terms are absent, led by %q", len(missing), top.Text),
			Penalty:  1 - baseMatch,
		})
	}
	return result
}

// detectStuffing flags candidate terms whose frequency exceeds the larger
// of 5% of the total word count and a fixed floor. The total stuffing
// score is the sum of flagged frequency ratios, capped at 1.0.
func detectStuffing(candidateText string, candidate *types.TermList) ([]StuffedTerm, float64) {
	wordCount := len(terms.Tokenize(candidateText, terms.TokenizerOptions{}))
	if wordCount == 0 {
		return nil, 0
	}

	threshold := float64(wordCount) * stuffingRatio
	if threshold < stuffingFloor {
		threshold = stuffingFloor
	}

	var flagged []StuffedTerm
	total := 0.0
	for _, t := range candidate.Terms {
		if float64(t.Frequency) > threshold {
			ratio := float64(t.Frequency) / float64(wordCount)
			flagged = append(flagged, StuffedTerm{Term: t.Text, Frequency: t.Frequency, Ratio: ratio})
			total += ratio
		}
	}
	if total > 1 {
		total = 1
	}
	return flagged, total
}

// topMissing ranks missing terms by requirement frequency and truncates.
func topMissing(missing []types.Term) []string {
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Frequency > missing[j].Frequency
	})
	if len(missing) > maxMissingReported {
		missing = missing[:maxMissingReported]
	}
	out := make([]string, len(missing))
	for i, t := range missing {
		out[i] = t.Text
	}
	return out
}
