// Package goquery provides CSS-selector based parsers for the two docs.rs
// page shapes bevydoc understands: rendered search results pages and
// rustdoc item pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seba2390/bevydoc"
)

// Ensure SearchParser implements bevydoc.SearchParser at compile time.
var _ bevydoc.SearchParser = (*SearchParser)(nil)

// SearchParser extracts candidate items from a rendered docs.rs search
// results page.
type SearchParser struct{}

// NewSearchParser creates a new SearchParser.
func NewSearchParser() *SearchParser {
	return &SearchParser{}
}

// ParseResults extracts candidates from the results page HTML.
// Relative hrefs are resolved against pageURL. Rows that resolve outside the
// docs.rs/bevy/latest scope are dropped. An empty slice with a nil error
// means the search produced no results.
func (p *SearchParser) ParseResults(html string, pageURL string) ([]bevydoc.Candidate, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, bevydoc.Errorf(bevydoc.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bevydoc.Errorf(bevydoc.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var candidates []bevydoc.Candidate

	doc.Find("div.search-results a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !bevydoc.InScope(resolved) {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		kind, urlPath := itemFromURL(resolved)
		path := normalizePath(sel.Find(".result-name").Text())
		if path == "" {
			path = urlPath
		}

		candidates = append(candidates, bevydoc.Candidate{
			URL:         resolved,
			Path:        path,
			Kind:        kind,
			Description: strings.TrimSpace(sel.Find(".desc").Text()),
			Position:    len(candidates),
		})
	})

	return candidates, nil
}

// normalizePath collapses whitespace that rustdoc inserts between path
// segments in result rows.
func normalizePath(path string) string {
	return strings.Join(strings.Fields(path), "")
}

// itemFromURL derives an item's kind and Rust path from its docs.rs URL.
// Example: .../bevy/latest/bevy/prelude/struct.Commands.html returns
// (KindStruct, "bevy::prelude::Commands").
func itemFromURL(rawURL string) (bevydoc.ItemKind, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return bevydoc.KindUnknown, ""
	}

	rel := strings.TrimPrefix(u.Path, "/bevy/latest/")
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return bevydoc.KindUnknown, ""
	}

	segments := strings.Split(rel, "/")
	last := segments[len(segments)-1]

	// Module pages end in index.html or a bare directory.
	if last == "index.html" {
		return bevydoc.KindModule, strings.Join(segments[:len(segments)-1], "::")
	}
	if !strings.HasSuffix(last, ".html") {
		return bevydoc.KindModule, strings.Join(segments, "::")
	}

	// Item pages are <kind>.<Name>.html.
	stem := strings.TrimSuffix(last, ".html")
	kind, name, ok := strings.Cut(stem, ".")
	if !ok {
		return bevydoc.KindUnknown, strings.Join(append(segments[:len(segments)-1], stem), "::")
	}
	return bevydoc.ItemKind(kind), strings.Join(append(segments[:len(segments)-1], name), "::")
}

// resolveURL resolves a relative URL against a base URL.
// Fragments are stripped for deduplication. Returns empty string if the href
// cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
