package decoding

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML extracts readable text from an HTML payload. Script, style and
// navigation chrome are dropped; block elements are separated by
// newlines so downstream line-oriented checks still work.
type HTML struct{}

// Formats implements Decoder.
func (HTML) Formats() []string { return []string{"html", "htm"} }

// blockSelectors are rendered one per line in document order.
var blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, td, div"

// Decode implements Decoder.
func (HTML) Decode(data []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: "html", Message: "failed to parse document", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	seen := make(map[string]bool)
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text is fully covered by a nested block,
		// otherwise divs duplicate their children.
		if s.Is("div") && s.Find(blockSelectors).Length() > 0 {
			return
		}
		line := strings.TrimSpace(s.Text())
		if line == "" || seen[line] {
			return
		}
		seen[line] = true
		sb.WriteString(line)
		sb.WriteString("\n")
	})

	text := sb.String()
	var warnings []string
	if text == "" {
		// Fall back to the whole-document text rather than failing on
		// markup without recognizable block structure.
		text = strings.TrimSpace(doc.Text())
		if text == "" {
			return nil, &DecodeError{Format: "html", Message: "document contains no extractable text"}
		}
		warnings = append(warnings, "no block structure found, used raw document text")
	}

	return &Result{Success: true, Text: text, Warnings: warnings}, nil
}
