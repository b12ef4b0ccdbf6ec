package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/seba2390/bevydoc"
)

// Compile-time interface verification.
var _ bevydoc.LookupService = (*LookupService)(nil)

// LookupService implements bevydoc.LookupService using SQLite.
type LookupService struct {
	db *DB
}

// NewLookupService creates a new LookupService.
func NewLookupService(db *DB) *LookupService {
	return &LookupService{db: db}
}

// hashContent computes xxHash over the extracted fields and returns a hex string.
// The hash covers definition, example, and doc so any drift in cached content
// is detectable.
func hashContent(l *bevydoc.Lookup) string {
	h := xxhash.New()
	_, _ = h.WriteString(l.Definition)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(l.Example)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(l.Doc)

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// CreateLookup stores a lookup, replacing any cached entry for the same keyword.
func (s *LookupService) CreateLookup(ctx context.Context, l *bevydoc.Lookup) error {
	if err := l.Validate(); err != nil {
		return err
	}

	l.ID = uuid.New().String()
	l.FetchedAt = time.Now().UTC()
	l.ContentHash = hashContent(l)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (id, keyword, url, item_path, kind, definition, example, doc, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(keyword) DO UPDATE SET
			id = excluded.id,
			url = excluded.url,
			item_path = excluded.item_path,
			kind = excluded.kind,
			definition = excluded.definition,
			example = excluded.example,
			doc = excluded.doc,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, l.ID, l.Keyword, l.URL, l.ItemPath, string(l.Kind), l.Definition, l.Example, l.Doc,
		l.ContentHash, l.FetchedAt.Format(time.RFC3339))

	return err
}

const lookupColumns = "id, keyword, url, item_path, kind, definition, example, doc, content_hash, fetched_at"

// scanLookup scans a lookup row into a Lookup struct.
func scanLookup(scan func(dest ...any) error) (*bevydoc.Lookup, error) {
	var l bevydoc.Lookup
	var kind, fetchedAt string

	if err := scan(&l.ID, &l.Keyword, &l.URL, &l.ItemPath, &kind, &l.Definition,
		&l.Example, &l.Doc, &l.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	l.Kind = bevydoc.ItemKind(kind)

	var err error
	l.FetchedAt, err = timeFromColumn(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// FindLookupByID retrieves a lookup by ID.
func (s *LookupService) FindLookupByID(ctx context.Context, id string) (*bevydoc.Lookup, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+lookupColumns+" FROM lookups WHERE id = ?", id)

	l, err := scanLookup(row.Scan)
	if err == sql.ErrNoRows {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "lookup not found")
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// FindLookupByKeyword retrieves the cached lookup for a keyword.
func (s *LookupService) FindLookupByKeyword(ctx context.Context, keyword string) (*bevydoc.Lookup, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+lookupColumns+" FROM lookups WHERE keyword = ?", keyword)

	l, err := scanLookup(row.Scan)
	if err == sql.ErrNoRows {
		return nil, bevydoc.Errorf(bevydoc.ENOTFOUND, "no cached lookup for %q", keyword)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// FindLookups retrieves lookups matching the filter.
func (s *LookupService) FindLookups(ctx context.Context, filter bevydoc.LookupFilter) ([]*bevydoc.Lookup, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + lookupColumns + " FROM lookups WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}
	if filter.ItemPath != nil {
		query.WriteString(" AND item_path = ?")
		args = append(args, *filter.ItemPath)
	}

	switch filter.SortBy {
	case bevydoc.SortByKeyword:
		query.WriteString(" ORDER BY keyword ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	applyLimitOffset(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []*bevydoc.Lookup
	for rows.Next() {
		l, err := scanLookup(rows.Scan)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// DeleteLookup permanently removes a lookup.
func (s *LookupService) DeleteLookup(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return bevydoc.Errorf(bevydoc.ENOTFOUND, "lookup not found")
	}

	return nil
}
