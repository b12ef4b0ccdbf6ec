package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeFromColumn parses the RFC 3339 timestamp stored in column col.
// Timestamps are stored as text; see CreateLookup.
func timeFromColumn(value, col string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", col, err)
	}
	return t, nil
}

// applyLimitOffset appends LIMIT and OFFSET clauses for the filter values
// that are set. Zero values leave the query unpaginated.
func applyLimitOffset(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
