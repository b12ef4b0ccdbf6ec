package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seba2390/bevydoc"
)

// Ensure DocExtractor implements bevydoc.DocExtractor at compile time.
var _ bevydoc.DocExtractor = (*DocExtractor)(nil)

// DocExtractor extracts the signature, example, and docblock from a rustdoc
// item page.
type DocExtractor struct{}

// NewDocExtractor creates a new DocExtractor.
func NewDocExtractor() *DocExtractor {
	return &DocExtractor{}
}

// ExtractItem parses the item page HTML and captures the definition and the
// first example. Returns ENOTFOUND if the page has no signature block, which
// means it is not a rustdoc item page.
func (e *DocExtractor) ExtractItem(html string, pageURL string) (*bevydoc.ItemDoc, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bevydoc.Errorf(bevydoc.EINVALID, "failed to parse HTML: %v", err)
	}

	definition := strings.TrimSpace(doc.Find("pre.rust.item-decl").First().Text())
	if definition == "" {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "no item declaration found at %s", pageURL)
	}

	kind, path := itemFromURL(pageURL)
	if p := pathFromTitle(doc); p != "" {
		path = p
	}

	// The top-level docblock holds the item's prose documentation and its
	// example code blocks. Per-method docblocks further down the page are
	// deliberately ignored.
	docblock := doc.Find("section#main-content .docblock").First()

	var example string
	docblock.Find("div.example-wrap pre").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		example = strings.TrimRight(sel.Text(), "\n")
		return false
	})

	docHTML := ""
	if docblock.Length() > 0 {
		docHTML, err = docblock.Html()
		if err != nil {
			return nil, bevydoc.Errorf(bevydoc.EINTERNAL, "failed to serialize docblock: %v", err)
		}
	}

	return &bevydoc.ItemDoc{
		URL:        pageURL,
		Path:       path,
		Kind:       kind,
		Definition: definition,
		Example:    example,
		DocHTML:    docHTML,
	}, nil
}

// pathFromTitle recovers the item path from the page title.
// rustdoc titles look like "Commands in bevy::prelude - Rust".
func pathFromTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = strings.TrimSuffix(title, " - Rust")

	name, module, ok := strings.Cut(title, " in ")
	if !ok {
		return ""
	}
	name = strings.TrimSpace(name)
	module = strings.TrimSpace(module)
	if name == "" || module == "" || strings.ContainsAny(name, " \t") {
		return ""
	}
	return module + "::" + name
}
