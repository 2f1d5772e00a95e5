package extraction

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// hostContains reports whether the URL's host matches any fragment.
func hostContains(pageURL string, fragments ...string) bool {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	for _, f := range fragments {
		if strings.Contains(host, f) {
			return true
		}
	}
	return false
}

// extractWith pulls a posting out of the DOM using ordered description
// selectors plus per-platform noise selectors.
func extractWith(doc *goquery.Document, pageURL, source string, descSelectors, noiseSelectors []string) (*Posting, error) {
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var desc string
	for _, sel := range descSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			desc = collapseBlankLines(s.First().Text())
			if desc != "" {
				break
			}
		}
	}
	if desc == "" {
		desc = collapseBlankLines(doc.Find("body").Text())
	}
	if desc == "" {
		return nil, &Error{URL: pageURL, Message: "page contains no extractable description"}
	}

	return &Posting{
		URL:         pageURL,
		Source:      source,
		Title:       firstText(doc, "h1", ".app-title", ".posting-headline h2", "title"),
		Company:     firstText(doc, ".company-name", ".posting-categories .sort-by-team", "[data-automation-id='company']"),
		Location:    firstText(doc, ".location", ".posting-categories .sort-by-location", "[data-automation-id='locations']"),
		Description: desc,
	}, nil
}

// Greenhouse extracts postings hosted on the Greenhouse ATS.
type Greenhouse struct{}

// Name implements Extractor.
func (Greenhouse) Name() string { return "greenhouse" }

// Detect implements Extractor.
func (Greenhouse) Detect(pageURL string) bool {
	return hostContains(pageURL, "greenhouse.io")
}

// Extract implements Extractor.
func (Greenhouse) Extract(doc *goquery.Document, pageURL string) (*Posting, error) {
	return extractWith(doc, pageURL, "greenhouse",
		[]string{
			".job__description.body",
			".job__description",
			"#content",
			".job-post-container",
		},
		[]string{
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
			".post-apply",
		})
}

// Lever extracts postings hosted on the Lever ATS.
type Lever struct{}

// Name implements Extractor.
func (Lever) Name() string { return "lever" }

// Detect implements Extractor.
func (Lever) Detect(pageURL string) bool {
	return hostContains(pageURL, "lever.co")
}

// Extract implements Extractor.
func (Lever) Extract(doc *goquery.Document, pageURL string) (*Posting, error) {
	return extractWith(doc, pageURL, "lever",
		[]string{
			".posting-description",
			".section-wrapper.page-full-width",
			".posting-page",
			".content",
		},
		[]string{
			".apply-section",
			".lever-application-form",
			".posting-apply",
		})
}

// Workday extracts postings hosted on the Workday ATS.
type Workday struct{}

// Name implements Extractor.
func (Workday) Name() string { return "workday" }

// Detect implements Extractor.
func (Workday) Detect(pageURL string) bool {
	return hostContains(pageURL, "workday.com", "myworkdayjobs.com")
}

// Extract implements Extractor.
func (Workday) Extract(doc *goquery.Document, pageURL string) (*Posting, error) {
	return extractWith(doc, pageURL, "workday",
		[]string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		},
		[]string{
			"[data-automation-id='applyButton']",
			".application-section",
		})
}

// Generic handles any page the platform extractors do not claim.
type Generic struct{}

// Name implements Extractor.
func (Generic) Name() string { return "generic" }

// Detect implements Extractor.
func (Generic) Detect(string) bool { return true }

// Extract implements Extractor.
func (Generic) Extract(doc *goquery.Document, pageURL string) (*Posting, error) {
	return extractWith(doc, pageURL, "generic",
		[]string{
			".job-description",
			"#job-description",
			".job-content",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}, nil)
}
