// Package sqlite provides SQLite-based storage for the bevydoc lookup cache.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB wraps the connection to the lookup cache database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the cache database and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open cache database: %w", err)
	}

	// The cache is written by a single CLI process; one connection avoids
	// SQLite writer contention entirely.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect to cache database: %w", err)
	}

	// A batch run can hold the writer for a while; wait out short lock
	// contention instead of failing with "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("set busy timeout: %w", err)
	}

	// WAL mode for file-backed caches. In-memory databases don't support it.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the lookups table and its indexes.
// The keyword is UNIQUE: the cache holds at most one lookup per keyword,
// and CreateLookup upserts on it. The url index serves batch-mode reuse of
// items resolved under another keyword; item_path serves export and list
// filtering.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id TEXT PRIMARY KEY,
			keyword TEXT NOT NULL UNIQUE,
			url TEXT NOT NULL,
			item_path TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL,
			example TEXT NOT NULL DEFAULT '',
			doc TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_url ON lookups(url);
		CREATE INDEX IF NOT EXISTS idx_lookups_item_path ON lookups(item_path);
	`

	_, err := db.db.Exec(schema)
	return err
}
