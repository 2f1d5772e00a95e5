package feedback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/terms"
	"github.com/jonathan/resume-scorer/internal/types"
)

var wordSynonyms = dictionary.MustMultiTable(dictionary.TableWordSynonyms)

const (
	// overuseRatio is the share of total words beyond which a single
	// word counts as overused.
	overuseRatio = 0.03
	// overuseFloor keeps short documents from flagging words that only
	// appear a handful of times.
	overuseFloor = 4
	// maxOverusedSuggestions bounds per-call output.
	maxOverusedSuggestions = 5
)

// OverusedWords flags words whose frequency is disproportionate to the
// document length and offers synonyms from the curated table.
type OverusedWords struct{}

// Name implements Detector.
func (OverusedWords) Name() string { return "overused_words" }

// Detect implements Detector.
func (OverusedWords) Detect(candidateText, _ string, _ *types.DocumentMetadata) []types.Suggestion {
	tokens := terms.Tokenize(candidateText, terms.TokenizerOptions{})
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if terms.IsStopword(tok) {
			continue
		}
		counts[tok]++
	}

	threshold := float64(len(tokens)) * overuseRatio
	if threshold < overuseFloor {
		threshold = overuseFloor
	}

	type overused struct {
		word  string
		count int
	}
	var flagged []overused
	for word, count := range counts {
		if float64(count) > threshold {
			flagged = append(flagged, overused{word, count})
		}
	}
	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].count != flagged[j].count {
			return flagged[i].count > flagged[j].count
		}
		return flagged[i].word < flagged[j].word
	})
	if len(flagged) > maxOverusedSuggestions {
		flagged = flagged[:maxOverusedSuggestions]
	}

	var out []types.Suggestion
	for _, f := range flagged {
		advice := "Vary your wording; repetition dulls the document."
		meta := map[string]any{"word": f.word, "count": f.count}
		if alternatives, ok := wordSynonyms[f.word]; ok {
			advice = fmt.Sprintf("Swap some occurrences for %s.", strings.Join(alternatives, ", "))
			meta["alternatives"] = alternatives
		}
		out = append(out, types.Suggestion{
			Category:         CategoryWordChoice,
			Severity:         types.SeverityImprovement,
			Title:            fmt.Sprintf("Overused word: %s", f.word),
			Message:          fmt.Sprintf("%q appears %d times in a %d-word document.", f.word, f.count, len(tokens)),
			ActionableAdvice: advice,
			Metadata:         meta,
		})
	}
	return out
}
