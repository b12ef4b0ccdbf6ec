package lookup

import (
	"context"
	"time"
)

// FetchFunc fetches a docs.rs page and returns its HTML.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives a printf-style message for each retried attempt.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the fixed backoff schedule for page fetches:
// 1s, 2s, 4s. docs.rs occasionally serves errors while a crate's docs
// rebuild; a few spaced retries ride that out without hammering the site.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches a URL, retrying once per entry in delays.
// An empty delays slice disables retries. The context is checked between
// attempts; canceling an in-flight fetch is the FetchFunc's concern.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	if err == nil {
		return html, nil
	}

	for i, delay := range delays {
		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, i+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		if html, err = fetch(ctx, url); err == nil {
			return html, nil
		}
	}

	return "", err
}
