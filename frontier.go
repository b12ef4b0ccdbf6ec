package bevydoc

import "context"

// ItemFrontier tracks item URLs already fetched during a batch run so two
// keywords resolving to the same item fetch its page once.
type ItemFrontier interface {
	// Claim marks the URL as fetched.
	// Returns false if the URL has already been claimed.
	Claim(url string) bool

	// Seen returns true if the URL has been claimed.
	Seen(url string) bool

	// Len returns the number of claimed URLs.
	Len() int
}

// RateLimiter provides per-domain rate limiting.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
