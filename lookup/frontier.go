package lookup

import (
	"sync"

	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/bloom"
)

// Compile-time interface verification.
var _ bevydoc.ItemFrontier = (*Frontier)(nil)

// Frontier tracks claimed item URLs with Bloom filter deduplication.
// Fragment handling lives in the filter: URLs differing only by anchor are
// one item. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.URLFilter
	count int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewURLFilter(n, fpRate),
	}
}

// Claim marks the URL as fetched.
// Returns false if the URL has already been claimed.
func (f *Frontier) Claim(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.count++
	return true
}

// Seen returns true if the URL has been claimed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}

// Len returns the number of claimed URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}
