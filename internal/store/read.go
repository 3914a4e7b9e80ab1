package store

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// Record is one stored name pair.
type Record struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns every record ordered by ascending ID.
//
// Returns an empty slice (not nil) when the names table does not exist yet.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	ok, err := s.hasSchema(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Record{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, created_at
		FROM names
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.CreatedAt); err != nil {
			return nil, &StorageError{Op: "scan record", Err: err}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate records", Err: err}
	}

	return records, nil
}

// ListNames opens the database at path, lists every record and closes the
// database again. An empty path means DefaultPath.
//
// A missing database file yields an empty slice and is not created.
func ListNames(ctx context.Context, path string) ([]Record, error) {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("database not found, nothing to list", "path", path)
			return []Record{}, nil
		}
		return nil, &StorageError{Op: "stat", Err: err}
	}

	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "path", s.path, "error", closeErr)
		}
	}()

	return s.List(ctx)
}

// InitSchema opens the database at path and ensures the names table exists.
// An empty path means DefaultPath.
func InitSchema(ctx context.Context, path string) error {
	s, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "path", s.path, "error", closeErr)
		}
	}()

	return s.EnsureSchema(ctx)
}
