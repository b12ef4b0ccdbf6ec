package bevydoc

import (
	"context"
	"time"
)

// Lookup represents a cached documentation lookup.
type Lookup struct {
	ID          string    `json:"id"`
	Keyword     string    `json:"keyword"`
	URL         string    `json:"url"`
	ItemPath    string    `json:"itemPath"`
	Kind        ItemKind  `json:"kind"`
	Definition  string    `json:"definition"`
	Example     string    `json:"example,omitempty"`
	Doc         string    `json:"doc,omitempty"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the lookup contains invalid fields.
func (l *Lookup) Validate() error {
	if l.Keyword == "" {
		return Errorf(EINVALID, "lookup keyword required")
	}
	if l.URL == "" {
		return Errorf(EINVALID, "lookup URL required")
	}
	if l.Definition == "" {
		return Errorf(EINVALID, "lookup definition required")
	}
	return nil
}

// SortOrder represents the sort order for lookup queries.
type SortOrder string

// SortOrder constants for LookupFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByKeyword   SortOrder = "keyword"
)

// LookupFilter represents a filter for FindLookups.
type LookupFilter struct {
	ID       *string `json:"id"`
	Keyword  *string `json:"keyword"`
	ItemPath *string `json:"itemPath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// LookupService represents a service for managing cached lookups.
type LookupService interface {
	// CreateLookup stores a lookup, replacing any cached entry for the
	// same keyword.
	CreateLookup(ctx context.Context, lookup *Lookup) error

	// FindLookupByID retrieves a lookup by ID.
	// Returns ENOTFOUND if the lookup does not exist.
	FindLookupByID(ctx context.Context, id string) (*Lookup, error)

	// FindLookupByKeyword retrieves the cached lookup for a keyword.
	// Returns ENOTFOUND if the keyword has not been looked up.
	FindLookupByKeyword(ctx context.Context, keyword string) (*Lookup, error)

	// FindLookups retrieves lookups matching the filter.
	FindLookups(ctx context.Context, filter LookupFilter) ([]*Lookup, error)

	// DeleteLookup permanently removes a lookup.
	// Returns ENOTFOUND if the lookup does not exist.
	DeleteLookup(ctx context.Context, id string) error
}

// LookupWriter writes lookups to storage.
type LookupWriter interface {
	CreateLookup(ctx context.Context, lookup *Lookup) error
}
