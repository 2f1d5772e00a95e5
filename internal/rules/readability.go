package rules

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// Optimal word-count band for a candidate document.
	minOptimalWords = 300
	maxOptimalWords = 800

	// Penalties are deductions from a 100-point start. Too short is
	// worse than too long.
	penaltyTooShort     = 25.0
	penaltyTooLong      = 10.0
	penaltyLongSentence = 15.0
	penaltyLowEase      = 15.0
	penaltyFewSections  = 10.0

	maxAvgSentenceLen = 22.0
	minReadingEase    = 55.0
	minSectionHeaders = 2
)

var sectionHeaders = dictionary.MustSet(dictionary.TableSectionHeaders)

// Readability scores document length, sentence complexity and structure.
type Readability struct{}

// Name implements Rule.
func (Readability) Name() string { return NameReadability }

// Evaluate implements Rule.
func (Readability) Evaluate(candidateText, _ string, _ *types.DocumentMetadata) types.SubScoreResult {
	words := strings.Fields(candidateText)
	wordCount := len(words)
	sentenceCount := countSentences(candidateText)
	if sentenceCount == 0 && wordCount > 0 {
		sentenceCount = 1
	}

	avgWordsPerSentence := 0.0
	avgWordLength := 0.0
	if wordCount > 0 {
		avgWordsPerSentence = float64(wordCount) / float64(sentenceCount)
		totalChars := 0
		for _, w := range words {
			totalChars += len([]rune(w))
		}
		avgWordLength = float64(totalChars) / float64(wordCount)
	}
	ease := readingEase(avgWordsPerSentence, avgWordLength)
	headers := countSectionHeaders(candidateText)

	score := 100.0
	var issues []types.Issue
	deduct := func(points float64, issueType, message string, severity types.Severity) {
		score -= points
		issues = append(issues, types.Issue{Type: issueType, Severity: severity, Message: message, Penalty: points})
	}

	switch {
	case wordCount < minOptimalWords:
		deduct(penaltyTooShort, "too_short",
			fmt.Sprintf("%d words is below the %d-word optimal minimum; thin documents read as lacking substance", wordCount, minOptimalWords),
			types.SeverityWarning)
	case wordCount > maxOptimalWords:
		deduct(penaltyTooLong, "too_long",
			fmt.Sprintf("%d words exceeds the %d-word optimal maximum; trim to the strongest material", wordCount, maxOptimalWords),
			types.SeverityImprovement)
	}

	if avgWordsPerSentence > maxAvgSentenceLen {
		deduct(penaltyLongSentence, "long_sentences",
			fmt.Sprintf("average sentence length %.1f words exceeds %.0f; split long sentences", avgWordsPerSentence, maxAvgSentenceLen),
			types.SeverityImprovement)
	}

	if wordCount > 0 && ease < minReadingEase {
		deduct(penaltyLowEase, "low_reading_ease",
			fmt.Sprintf("reading ease %.0f is below %.0f; prefer shorter words and sentences", ease, minReadingEase),
			types.SeverityImprovement)
	}

	if headers < minSectionHeaders {
		deduct(penaltyFewSections, "few_sections",
			fmt.Sprintf("only %d recognized section headers found; use standard sections like Experience, Education and Skills", headers),
			types.SeverityWarning)
	}

	if score < 0 {
		score = 0
	}
	return types.SubScoreResult{
		Score: score / 100,
		Details: map[string]any{
			"word_count":             wordCount,
			"sentence_count":         sentenceCount,
			"avg_words_per_sentence": avgWordsPerSentence,
			"reading_ease":           ease,
			"section_headers":        headers,
		},
		Issues: issues,
	}
}

// readingEase is a simplified Flesch-style measure using average word
// length as a syllable proxy (one syllable per three characters).
func readingEase(avgWordsPerSentence, avgWordLength float64) float64 {
	ease := 206.835 - 1.015*avgWordsPerSentence - 84.6*(avgWordLength/3.0)
	if ease < 0 {
		return 0
	}
	if ease > 100 {
		return 100
	}
	return ease
}

// countSentences counts terminal-punctuation boundaries.
func countSentences(text string) int {
	count := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	return count
}

// countSectionHeaders counts lines that consist solely of a recognized
// section header (case-insensitive, optional trailing colon).
func countSectionHeaders(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		header := strings.ToLower(strings.TrimSpace(line))
		header = strings.TrimSuffix(header, ":")
		if header == "" {
			continue
		}
		if sectionHeaders[header] {
			count++
		}
	}
	return count
}
