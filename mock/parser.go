package mock

import "github.com/seba2390/bevydoc"

var _ bevydoc.SearchParser = (*SearchParser)(nil)

// SearchParser is a mock implementation of bevydoc.SearchParser.
type SearchParser struct {
	ParseResultsFn func(html string, pageURL string) ([]bevydoc.Candidate, error)
}

func (p *SearchParser) ParseResults(html string, pageURL string) ([]bevydoc.Candidate, error) {
	return p.ParseResultsFn(html, pageURL)
}
