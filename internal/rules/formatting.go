package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Fixed deductions for formatting anti-patterns, applied to a 100-point
// starting score.
const (
	penaltyNonStandardPunct = 10.0
	penaltyTabularContent   = 5.0
	penaltyRepeatedMarkers  = 3.0
	penaltyNoContactInfo    = 15.0
	penaltyPartialContact   = 5.0
	penaltyMixedBullets     = 3.0
	penaltyBadFormat        = 20.0

	maxDistinctPunct = 5
	maxPipeInstances = 3
	maxMarkerRepeats = 5
)

var (
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe      = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	pageMarkerRe = regexp.MustCompile(`(?im)^\s*(page\s+\d+(\s+of\s+\d+)?|\d+\s*/\s*\d+|-\s*\d+\s*-)\s*$`)
)

// standardPunct is punctuation expected in prose and technical text;
// anything else counts toward the non-standard set.
const standardPunct = `.,;:!?'"()\-–—/&%$#+@_`

// bulletMarkers are the recognized bullet-line prefixes.
var bulletMarkers = []string{"-", "*", "•", "●", "◦", "▪", ">"}

// ATS-parseable source formats. Anything else draws the format penalty.
var supportedFormats = map[string]bool{
	"":     true, // metadata absent
	"txt":  true,
	"text": true,
	"md":   true,
	"pdf":  true,
	"docx": true,
	"html": true,
}

// Formatting detects machine-parseability anti-patterns: decorative
// punctuation, tables, repeated page furniture, absent contact info, mixed
// bullet styles and unparseable source formats.
type Formatting struct{}

// Name implements Rule.
func (Formatting) Name() string { return NameFormatting }

// Evaluate implements Rule.
func (Formatting) Evaluate(candidateText, _ string, meta *types.DocumentMetadata) types.SubScoreResult {
	score := 100.0
	result := types.SubScoreResult{Details: map[string]any{}}

	deduct := func(points float64, issueType, message string, severity types.Severity) {
		score -= points
		result.Issues = append(result.Issues, types.Issue{
			Type:     issueType,
			Severity: severity,
			Message:  message,
			Penalty:  points,
		})
	}

	if n := countNonStandardPunct(candidateText); n > maxDistinctPunct {
		deduct(penaltyNonStandardPunct, "nonstandard_punctuation",
			fmt.Sprintf("%d distinct decorative punctuation characters found; ATS parsers often garble these", n),
			types.SeverityWarning)
	}
	result.Details["nonstandard_punct"] = countNonStandardPunct(candidateText)

	if n := strings.Count(candidateText, "|"); n > maxPipeInstances {
		deduct(penaltyTabularContent, "tabular_content",
			fmt.Sprintf("%d pipe characters suggest tabular layout, which parses poorly", n),
			types.SeverityWarning)
	}

	if n := len(pageMarkerRe.FindAllString(candidateText, -1)); n > maxMarkerRepeats {
		deduct(penaltyRepeatedMarkers, "repeated_markers",
			fmt.Sprintf("%d header/footer/page-number lines detected; export without page furniture", n),
			types.SeverityImprovement)
	}

	hasEmail := emailRe.MatchString(candidateText)
	hasPhone := phoneRe.MatchString(candidateText)
	switch {
	case !hasEmail && !hasPhone:
		deduct(penaltyNoContactInfo, "missing_contact",
			"no email address or phone number found", types.SeverityCritical)
	case !hasEmail:
		deduct(penaltyPartialContact, "missing_contact",
			"no email address found", types.SeverityWarning)
		result.Warnings = append(result.Warnings, "email address missing")
	case !hasPhone:
		deduct(penaltyPartialContact, "missing_contact",
			"no phone number found", types.SeverityWarning)
		result.Warnings = append(result.Warnings, "phone number missing")
	}
	result.Details["has_email"] = hasEmail
	result.Details["has_phone"] = hasPhone

	if styles := bulletStyles(candidateText); len(styles) > 1 {
		deduct(penaltyMixedBullets, "mixed_bullets",
			fmt.Sprintf("mixed bullet markers %v; pick one style", styles),
			types.SeverityImprovement)
	}

	if meta != nil && !supportedFormats[strings.ToLower(meta.Format)] {
		deduct(penaltyBadFormat, "unsupported_format",
			fmt.Sprintf("source format %q is unreliable for automated parsing", meta.Format),
			types.SeverityCritical)
	}

	if score < 0 {
		score = 0
	}
	return types.SubScoreResult{
		Score:    score / 100,
		Details:  result.Details,
		Issues:   result.Issues,
		Warnings: result.Warnings,
	}
}

// countNonStandardPunct counts distinct punctuation/symbol characters
// outside the standard set.
func countNonStandardPunct(text string) int {
	standard := make(map[rune]bool, len(standardPunct))
	for _, r := range standardPunct {
		standard[r] = true
	}
	seen := make(map[rune]bool)
	for _, r := range text {
		if r > 127 || standard[r] {
			continue
		}
		if (r >= '!' && r <= '/') || (r >= ':' && r <= '@') || (r >= '[' && r <= '`') || (r >= '{' && r <= '~') {
			seen[r] = true
		}
	}
	// Non-ASCII symbols (box drawing, decorative dingbats) count too,
	// but letters and common bullets do not.
	for _, r := range text {
		if r <= 127 || standard[r] {
			continue
		}
		if isDecorative(r) {
			seen[r] = true
		}
	}
	return len(seen)
}

// isDecorative reports whether a non-ASCII rune is a decorative symbol
// rather than a letter, digit, space or recognized bullet marker.
func isDecorative(r rune) bool {
	for _, m := range bulletMarkers {
		if strings.ContainsRune(m, r) {
			return false
		}
	}
	switch {
	case r >= 0x2500 && r <= 0x257F: // box drawing
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r == '★' || r == '☆' || r == '✓' || r == '✦':
		return true
	}
	return false
}

// bulletStyles returns the distinct bullet markers that begin lines.
func bulletStyles(text string) []string {
	seen := make(map[string]bool)
	var styles []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if strings.HasPrefix(trimmed, marker+" ") && !seen[marker] {
				seen[marker] = true
				styles = append(styles, marker)
			}
		}
	}
	return styles
}
