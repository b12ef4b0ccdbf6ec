package bevydoc

import "strings"

// ItemKind identifies the kind of a rustdoc item.
type ItemKind string

// Item kinds as they appear in docs.rs result rows and page URLs.
const (
	KindUnknown  ItemKind = ""
	KindModule   ItemKind = "mod"
	KindStruct   ItemKind = "struct"
	KindEnum     ItemKind = "enum"
	KindTrait    ItemKind = "trait"
	KindFn       ItemKind = "fn"
	KindMacro    ItemKind = "macro"
	KindType     ItemKind = "type"
	KindConstant ItemKind = "constant"
	KindMethod   ItemKind = "method"
)

// Candidate represents one hit on a docs.rs search results page.
type Candidate struct {
	URL         string   `json:"url"`
	Path        string   `json:"path"` // e.g. "bevy::prelude::Commands"
	Kind        ItemKind `json:"kind"`
	Description string   `json:"description"`
	Position    int      `json:"position"` // document order on the results page
}

// Name returns the final segment of the candidate's item path.
func (c Candidate) Name() string {
	if idx := strings.LastIndex(c.Path, "::"); idx != -1 {
		return c.Path[idx+2:]
	}
	return c.Path
}

// Module returns the path with the item name stripped.
func (c Candidate) Module() string {
	if idx := strings.LastIndex(c.Path, "::"); idx != -1 {
		return c.Path[:idx]
	}
	return ""
}

// SearchParser parses a docs.rs search results page.
type SearchParser interface {
	// ParseResults extracts candidate items from a rendered results page.
	// pageURL is used to resolve relative links. Candidates pointing outside
	// the docs.rs/bevy/latest scope are dropped.
	ParseResults(html string, pageURL string) ([]Candidate, error)
}
