// Package htmltomarkdown renders rustdoc docblock HTML as Markdown.
//
// Docblocks on docs.rs carry paragraphs, intra-doc links, inline code,
// fenced examples, lists and the occasional table. The commonmark and table
// plugins together cover everything rustdoc emits.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/seba2390/bevydoc"
)

// Ensure Converter implements bevydoc.Converter at compile time.
var _ bevydoc.Converter = (*Converter)(nil)

// Converter turns extracted docblock HTML into the Markdown stored on a
// lookup.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms docblock HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", bevydoc.Errorf(bevydoc.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(result), nil
}

// normalize tidies converter output. Extraction strips rustdoc chrome such
// as source links and collapse toggles out of the docblock, which leaves
// stacks of blank lines behind after conversion.
func normalize(md string) string {
	for strings.Contains(md, "\n\n\n") {
		md = strings.ReplaceAll(md, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(md)
}
