package mock

import (
	"context"

	"github.com/seba2390/bevydoc"
)

var _ bevydoc.ItemFrontier = (*ItemFrontier)(nil)

// ItemFrontier is a mock implementation of bevydoc.ItemFrontier.
type ItemFrontier struct {
	ClaimFn func(url string) bool
	SeenFn  func(url string) bool
	LenFn   func() int
}

func (f *ItemFrontier) Claim(url string) bool {
	return f.ClaimFn(url)
}

func (f *ItemFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

func (f *ItemFrontier) Len() int {
	return f.LenFn()
}

var _ bevydoc.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of bevydoc.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (r *RateLimiter) Wait(ctx context.Context, domain string) error {
	return r.WaitFn(ctx, domain)
}
