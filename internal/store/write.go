package store

import (
	"context"
	"log/slog"
	"strings"
)

// Insert trims both names, ensures the schema exists and inserts a new
// record. Returns the ID SQLite assigned to the row.
//
// The first name is checked before the last name; a *ValidationError is
// returned without touching the database if either is empty once trimmed.
// Database failures are returned as *StorageError.
func (s *Store) Insert(ctx context.Context, firstName, lastName string) (int64, error) {
	first, last, err := normalizeNames(firstName, lastName)
	if err != nil {
		return 0, err
	}

	if err := s.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO names (first_name, last_name)
		VALUES (?, ?)
	`, first, last)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "last insert id", Err: err}
	}

	slog.Debug("name stored", "id", id, "path", s.path)
	return id, nil
}

// StoreName opens the database at path, inserts one record and closes the
// database again. An empty path means DefaultPath.
func StoreName(ctx context.Context, path, firstName, lastName string) (int64, error) {
	// Validate before opening so bad input never creates the file.
	if _, _, err := normalizeNames(firstName, lastName); err != nil {
		return 0, err
	}

	s, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "path", s.path, "error", closeErr)
		}
	}()

	return s.Insert(ctx, firstName, lastName)
}

// normalizeNames trims both names and rejects empty results.
func normalizeNames(firstName, lastName string) (string, string, error) {
	first := strings.TrimSpace(firstName)
	if first == "" {
		return "", "", newEmptyNameError(FieldFirstName)
	}
	last := strings.TrimSpace(lastName)
	if last == "" {
		return "", "", newEmptyNameError(FieldLastName)
	}
	return first, last, nil
}
