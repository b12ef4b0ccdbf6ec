package mock

import "github.com/seba2390/bevydoc"

var _ bevydoc.DocExtractor = (*DocExtractor)(nil)

// DocExtractor is a mock implementation of bevydoc.DocExtractor.
type DocExtractor struct {
	ExtractItemFn func(html string, pageURL string) (*bevydoc.ItemDoc, error)
}

func (e *DocExtractor) ExtractItem(html string, pageURL string) (*bevydoc.ItemDoc, error) {
	return e.ExtractItemFn(html, pageURL)
}
