package mock

import "github.com/seba2390/bevydoc"

var _ bevydoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of bevydoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
