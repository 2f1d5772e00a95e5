// Package decoding turns binary document payloads into plain text behind
// a format-tagged decoder registry. The scoring core never inspects
// binary payloads itself; it consumes this package's output.
package decoding

import (
	"strings"
)

// Result is the outcome of a successful decode. Warnings carry non-fatal
// observations (e.g. suspicious control characters that were stripped).
type Result struct {
	Success  bool     `json:"success"`
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

// Decoder converts one or more source formats to plain text.
type Decoder interface {
	// Formats lists the lowercase format tags this decoder handles.
	Formats() []string
	// Decode converts the payload to plain text.
	Decode(data []byte) (*Result, error)
}

// Registry resolves decoders by format tag.
type Registry struct {
	byFormat map[string]Decoder
}

// NewRegistry builds a registry with the built-in decoders.
func NewRegistry() *Registry {
	r := &Registry{byFormat: make(map[string]Decoder)}
	r.Register(PlainText{})
	r.Register(HTML{})
	return r
}

// Register adds a decoder for each of its format tags, replacing any
// previous decoder for the same tag.
func (r *Registry) Register(d Decoder) {
	for _, f := range d.Formats() {
		r.byFormat[strings.ToLower(f)] = d
	}
}

// Decode routes the payload to the decoder registered for the format tag.
// An unknown tag is a typed failure, never silently converted into an
// empty document.
func (r *Registry) Decode(data []byte, format string) (*Result, error) {
	d, ok := r.byFormat[strings.ToLower(format)]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	return d.Decode(data)
}

// Formats returns the registered format tags.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	return out
}
