// Package rod provides a browser-based implementation of bevydoc.Fetcher.
// docs.rs renders search results client-side from a search index, so the
// results page is only meaningful after JavaScript has run.
package rod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/seba2390/bevydoc"
)

// DefaultFetchTimeout bounds a single page fetch, including render time.
const DefaultFetchTimeout = 10 * time.Second

// searchRenderTimeout bounds the extra wait for the search results element
// after the page load event.
const searchRenderTimeout = 3 * time.Second

// Ensure Fetcher implements bevydoc.Fetcher at compile time.
var _ bevydoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	session *Session
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...SessionOption) (*Fetcher, error) {
	session, err := NewSession(opts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{session: session}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// For search pages it additionally waits for the results element so the
// client-side search has a chance to populate the page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.session.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// The load event fires before the search script has filled in results.
	// Wait briefly for the results container; a page with zero results never
	// renders it, so a timeout here is not an error.
	if strings.Contains(url, "?search=") {
		_, _ = page.Timeout(searchRenderTimeout).Element("div.search-results")
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.session.PageRendered()

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.session.Close()
}
