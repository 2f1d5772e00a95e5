package terms

import (
	"sort"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Default extraction bounds.
const (
	// DefaultMaxKeywords bounds the extracted term list to keep
	// downstream rule cost predictable.
	DefaultMaxKeywords = 100
	// DefaultMinFrequency is the minimum occurrences a term needs to
	// survive extraction.
	DefaultMinFrequency = 1
)

// ExtractOptions configures term extraction.
type ExtractOptions struct {
	RemoveStopwords bool
	NGrams          bool
	MinFrequency    int
	MaxKeywords     int
	// WithProximity additionally computes pairwise proximity
	// diagnostics over the top extracted terms.
	WithProximity bool
}

// DefaultExtractOptions returns the options used by the matching rules.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		RemoveStopwords: true,
		NGrams:          true,
		MinFrequency:    DefaultMinFrequency,
		MaxKeywords:     DefaultMaxKeywords,
	}
}

// ExtractResult is the output of one extraction call.
type ExtractResult struct {
	List      types.TermList
	Proximity []types.TermProximity
}

// Extract runs the full pipeline over one document: tokenize, filter,
// expand n-grams, normalize, count, threshold, rank, truncate, classify.
// Deduplication happens on the normalized text; ties in frequency are
// broken alphabetically so extraction is deterministic.
func Extract(text string, opts ExtractOptions) ExtractResult {
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = DefaultMaxKeywords
	}
	if opts.MinFrequency <= 0 {
		opts.MinFrequency = DefaultMinFrequency
	}

	tokens := Tokenize(text, TokenizerOptions{
		RemoveStopwords: opts.RemoveStopwords,
		NGrams:          opts.NGrams,
	})
	if len(tokens) == 0 {
		return ExtractResult{}
	}

	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		normalized := Normalize(tok)
		if normalized == "" {
			continue
		}
		freq[normalized]++
	}

	terms := make([]types.Term, 0, len(freq))
	for text, count := range freq {
		if count < opts.MinFrequency {
			continue
		}
		terms = append(terms, types.Term{Text: text, Frequency: count})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return terms[i].Text < terms[j].Text
	})
	if len(terms) > opts.MaxKeywords {
		terms = terms[:opts.MaxKeywords]
	}

	for i := range terms {
		terms[i].Category = Classify(terms[i].Text)
	}

	result := ExtractResult{List: types.TermList{Terms: terms}}
	if opts.WithProximity {
		result.Proximity = computeProximity(text, &result.List)
	}
	return result
}
