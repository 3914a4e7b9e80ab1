package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DefaultPath is the database file used when the caller does not pick one.
const DefaultPath = "names.db"

// Store provides durable storage for name records.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path and applies
// the connection pragmas. It does not create the names table or change the
// journal mode; EnsureSchema does both on demand so read-only callers never
// write to an existing file.
//
// The connection is configured with:
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "connect", Err: err}
	}

	// One handle per process invocation; SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "configure", Err: err}
	}

	slog.Debug("database opened", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the file the store was opened on.
func (s *Store) Path() string {
	return s.path
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EnsureSchema switches the file to WAL mode and creates the names table if
// it does not exist. Safe to call before every write.
func (s *Store) EnsureSchema(ctx context.Context) error {
	// journal_mode persists in the file header.
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return &StorageError{Op: "ensure schema", Err: err}
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return &StorageError{Op: "ensure schema", Err: err}
	}
	return nil
}

// hasSchema reports whether the names table exists.
func (s *Store) hasSchema(ctx context.Context) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'names'
	`).Scan(&count)
	if err != nil {
		return false, &StorageError{Op: "check schema", Err: err}
	}
	return count > 0, nil
}

// applyPragmas sets per-connection SQLite configuration. None of these
// persist in the database file.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
