package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeScorer/1.0)"

// FetchOptions configures page fetching.
type FetchOptions struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// RenderJS enables a headless browser fallback when the static
	// fetch yields too little content.
	RenderJS bool
}

// DefaultFetchOptions returns sensible defaults.
func DefaultFetchOptions() *FetchOptions {
	return &FetchOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Fetch retrieves a page's HTML over HTTP.
func Fetch(ctx context.Context, pageURL string, opts *FetchOptions) (string, error) {
	if opts == nil {
		opts = DefaultFetchOptions()
	}

	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// FromURL fetches a job page and extracts its posting. If the static
// fetch produces a suspiciously thin description and RenderJS is set,
// the page is re-rendered in a headless browser before giving up.
func FromURL(ctx context.Context, pageURL string, opts *FetchOptions) (*Posting, error) {
	if opts == nil {
		opts = DefaultFetchOptions()
	}

	html, err := Fetch(ctx, pageURL, opts)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	posting, err := registry.Extract(html, pageURL)
	if err == nil && !needsRendering(posting.Description) {
		return posting, nil
	}
	if !opts.RenderJS {
		return posting, err
	}

	rendered, renderErr := Render(ctx, pageURL, opts.Timeout)
	if renderErr != nil {
		// Keep the static result if rendering fails too.
		if err == nil {
			return posting, nil
		}
		return nil, &Error{URL: pageURL, Message: "browser rendering failed", Cause: renderErr}
	}
	return registry.Extract(rendered, pageURL)
}
