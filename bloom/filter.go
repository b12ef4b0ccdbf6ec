// Package bloom provides probabilistic item URL deduplication for batch
// lookups.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// URLFilter remembers item URLs probabilistically. A false positive makes a
// batch run reuse a cached lookup it could have refetched; a missed item
// page is never possible.
type URLFilter struct {
	f *bloom.BloomFilter
}

// NewURLFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewURLFilter(n uint, fpRate float64) *URLFilter {
	return &URLFilter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add remembers a URL.
func (f *URLFilter) Add(url string) {
	f.f.AddString(canonical(url))
}

// Test reports whether the URL may have been added.
func (f *URLFilter) Test(url string) bool {
	return f.f.TestString(canonical(url))
}

// canonical strips the fragment. rustdoc links reach the same item page
// under many anchors (#examples, #impl-Default, ...); they all identify one
// item.
func canonical(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i]
	}
	return url
}
