package bevydoc

import (
	"net/url"
	"strings"
)

// BaseURL is the root under which every documentation fetch must stay.
// Pinning to /latest means lookups always reflect the current Bevy release.
const BaseURL = "https://docs.rs/bevy/latest"

// NotFoundMessage is the only acceptable output when a lookup fails: the
// page didn't load or the search returned no results. Callers must emit it
// verbatim and never substitute remembered or guessed documentation.
const NotFoundMessage = "Documentation not found."

// SearchURL builds the docs.rs search URL for a keyword. The keyword is
// placed in the search query parameter; plain identifier keywords pass
// through unchanged, anything else is query-encoded.
func SearchURL(keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", Errorf(EINVALID, "keyword required")
	}
	return BaseURL + "/bevy/?search=" + url.QueryEscape(keyword), nil
}

// InScope reports whether rawURL points under BaseURL. Every URL the tool
// constructs or follows must satisfy this check.
func InScope(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "https" || u.Host != "docs.rs" {
		return false
	}
	return u.Path == "/bevy/latest" || strings.HasPrefix(u.Path, "/bevy/latest/")
}
