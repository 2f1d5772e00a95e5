package decoding

import (
	"strings"
	"unicode/utf8"
)

// PlainText handles already-textual payloads: raw text and markdown. It
// validates encoding, strips control characters and normalizes line
// endings, but never alters wording.
type PlainText struct{}

// Formats implements Decoder.
func (PlainText) Formats() []string { return []string{"txt", "text", "md"} }

// Decode implements Decoder.
func (PlainText) Decode(data []byte) (*Result, error) {
	if !utf8.Valid(data) {
		return nil, &DecodeError{Format: "txt", Message: "payload is not valid UTF-8"}
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var warnings []string
	cleaned, stripped := stripControl(text)
	if stripped > 0 {
		warnings = append(warnings, "stripped non-printable control characters")
	}

	return &Result{Success: true, Text: cleaned, Warnings: warnings}, nil
}

// stripControl removes control characters other than newline and tab and
// reports how many were removed.
func stripControl(s string) (string, int) {
	stripped := 0
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			stripped++
			return -1
		}
		return r
	}, s)
	return cleaned, stripped
}
