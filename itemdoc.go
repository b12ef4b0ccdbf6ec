package bevydoc

// ItemDoc holds the documentation extracted from a docs.rs item page.
// Extraction always attempts exactly two primary fields: the definition
// (signature block) and the example (first example code block). A missing
// example is recorded as empty, never invented.
type ItemDoc struct {
	URL        string   `json:"url"`
	Path       string   `json:"path"`
	Kind       ItemKind `json:"kind"`
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	DocHTML    string   `json:"-"`             // raw docblock HTML
	Doc        string   `json:"doc,omitempty"` // docblock converted to markdown
}

// Validate returns an error if the extracted doc is unusable.
func (d *ItemDoc) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "item doc URL required")
	}
	if d.Definition == "" {
		return Errorf(EINVALID, "item doc definition required")
	}
	return nil
}

// DocExtractor extracts documentation fields from a rustdoc item page.
type DocExtractor interface {
	// ExtractItem parses the item page HTML. pageURL identifies the page and
	// is recorded on the result. Returns ENOTFOUND if the page has no
	// signature block, meaning it isn't an item page.
	ExtractItem(html string, pageURL string) (*ItemDoc, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a rustdoc docblock).
	Convert(html string) (string, error)
}
