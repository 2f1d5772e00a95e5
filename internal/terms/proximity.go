package terms

import (
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// proximityWindow is the token distance within which two terms count
	// as co-occurring.
	proximityWindow = 10
	// maxProximityTerms caps the pairwise matrix; proximity is auxiliary
	// diagnostic data, not a scoring input.
	maxProximityTerms = 20
)

// computeProximity computes, for each pair of top extracted terms, the
// minimum token-index distance between any of their occurrences and the
// number of co-occurrences within the proximity window.
func computeProximity(text string, list *types.TermList) []types.TermProximity {
	top := list.Terms
	if len(top) > maxProximityTerms {
		top = top[:maxProximityTerms]
	}
	if len(top) < 2 {
		return nil
	}

	// Positions are indexes into the unfiltered single-word token stream
	// so distances reflect the original text layout.
	tokens := Tokenize(text, TokenizerOptions{})
	positions := make(map[string][]int, len(top))
	wanted := make(map[string]bool, len(top))
	for _, t := range top {
		wanted[t.Text] = true
	}
	for i, tok := range tokens {
		normalized := Normalize(tok)
		if wanted[normalized] {
			positions[normalized] = append(positions[normalized], i)
		}
	}

	var out []types.TermProximity
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			posA, posB := positions[top[i].Text], positions[top[j].Text]
			if len(posA) == 0 || len(posB) == 0 {
				continue
			}
			minDist, coOcc := pairDistance(posA, posB)
			out = append(out, types.TermProximity{
				TermA:         top[i].Text,
				TermB:         top[j].Text,
				MinDistance:   minDist,
				CoOccurrences: coOcc,
			})
		}
	}
	return out
}

// pairDistance returns the minimum absolute distance between two sorted
// position lists and the count of pairs within the proximity window.
func pairDistance(a, b []int) (minDist, coOccurrences int) {
	minDist = -1
	for _, pa := range a {
		for _, pb := range b {
			d := pa - pb
			if d < 0 {
				d = -d
			}
			if minDist < 0 || d < minDist {
				minDist = d
			}
			if d <= proximityWindow {
				coOccurrences++
			}
		}
	}
	return minDist, coOccurrences
}
