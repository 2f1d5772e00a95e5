// Package extraction pulls requirement text out of live job-posting
// pages. Platform-aware extractors know the DOM of the big applicant
// tracking systems; everything else goes through a generic extractor
// with heuristic selectors.
package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Posting is the structured result of extracting a job page.
type Posting struct {
	URL         string `json:"url"`
	Source      string `json:"source"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// Extractor is a capability pair: Detect says whether this extractor
// understands the page at the given URL, Extract pulls the posting out
// of its parsed DOM.
type Extractor interface {
	Name() string
	Detect(pageURL string) bool
	Extract(doc *goquery.Document, pageURL string) (*Posting, error)
}

// Registry holds extractors in priority order. The first extractor whose
// Detect accepts the URL wins; the generic extractor is the implicit
// last resort and accepts everything.
type Registry struct {
	extractors []Extractor
	fallback   Extractor
}

// NewRegistry builds a registry with the built-in platform extractors.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []Extractor{
			Greenhouse{},
			Lever{},
			Workday{},
		},
		fallback: Generic{},
	}
}

// For returns the extractor responsible for the URL.
func (r *Registry) For(pageURL string) Extractor {
	for _, e := range r.extractors {
		if e.Detect(pageURL) {
			return e
		}
	}
	return r.fallback
}

// Extract parses the HTML and runs the responsible extractor.
func (r *Registry) Extract(html, pageURL string) (*Posting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to parse page", Cause: err}
	}
	stripChrome(doc)
	return r.For(pageURL).Extract(doc, pageURL)
}

// stripChrome removes elements that never carry requirement text.
func stripChrome(doc *goquery.Document) {
	doc.Find("nav, footer, header, script, style, noscript, form, " +
		".cookie-banner, .cookie-consent, .gdpr-notice, " +
		".social-share, .share-buttons, .sidebar, .ads, .advertisement").Remove()
}

// firstText returns the trimmed text of the first selector that matches
// a non-empty element.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			if text := strings.TrimSpace(s.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// collapseBlankLines trims each line and drops runs of empty ones.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
