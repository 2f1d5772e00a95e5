// Package similarity computes TF-IDF weighted cosine similarity over a
// two-document corpus.
package similarity

import (
	"math"
)

// Vector maps a term to its non-negative TF-IDF weight. The vocabulary is
// the union of both documents' distinct tokens.
type Vector map[string]float64

// Magnitude returns the Euclidean norm of the vector. Zero only when the
// source document was empty after filtering.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Cosine computes the cosine similarity of two token sequences in [0,1].
// Either sequence being empty yields 0, never a division error.
func Cosine(tokensA, tokensB []string) float64 {
	vecA, vecB := Vectorize(tokensA, tokensB)
	return cosine(vecA, vecB)
}

// Vectorize builds TF-IDF vectors for two documents over their shared
// vocabulary. Document frequency is capped at one below the corpus size so
// a term present in both documents keeps a non-zero weight.
func Vectorize(tokensA, tokensB []string) (Vector, Vector) {
	tfA := termFrequency(tokensA)
	tfB := termFrequency(tokensB)

	vocab := make(map[string]struct{}, len(tfA)+len(tfB))
	for term := range tfA {
		vocab[term] = struct{}{}
	}
	for term := range tfB {
		vocab[term] = struct{}{}
	}

	const corpusSize = 2.0
	vecA := make(Vector, len(vocab))
	vecB := make(Vector, len(vocab))
	for term := range vocab {
		df := 0.0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		// Cap df so shared terms are not zeroed out by a strict
		// log(N/df) weighting.
		if df >= corpusSize {
			df = corpusSize - 1
		}
		idf := math.Log(corpusSize/df) + 1.0

		vecA[term] = tfA[term] * idf
		vecB[term] = tfB[term] * idf
	}
	return vecA, vecB
}

// termFrequency returns relative term frequencies for one token sequence.
func termFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}
	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	total := float64(len(tokens))
	for term := range counts {
		counts[term] /= total
	}
	return counts
}

func cosine(a, b Vector) float64 {
	magA, magB := a.Magnitude(), b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}
	dot := 0.0
	for term, wa := range a {
		dot += wa * b[term]
	}
	sim := dot / (magA * magB)
	// Guard against floating-point drift outside [0,1].
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
