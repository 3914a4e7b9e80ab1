package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_Basic(t *testing.T) {
	s := createTestStore(t)

	id, err := s.Insert(context.Background(), "John", "Doe")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var first, last string
	err = s.db.QueryRow("SELECT first_name, last_name FROM names WHERE id = ?", id).Scan(&first, &last)
	require.NoError(t, err)
	assert.Equal(t, "John", first)
	assert.Equal(t, "Doe", last)
}

func TestInsert_TrimsWhitespace(t *testing.T) {
	s := createTestStore(t)

	id, err := s.Insert(context.Background(), "  Jane  ", "  Smith  ")
	require.NoError(t, err)

	var first, last string
	err = s.db.QueryRow("SELECT first_name, last_name FROM names WHERE id = ?", id).Scan(&first, &last)
	require.NoError(t, err)
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Smith", last)
}

func TestInsert_SetsCreatedAt(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Insert(context.Background(), "John", "Doe")
	require.NoError(t, err)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].CreatedAt.IsZero(), "created_at should default at insert time")
}

func TestInsert_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		last      string
		wantField string
		wantMsg   string
	}{
		{"empty_first", "", "Doe", FieldFirstName, "First name cannot be empty."},
		{"empty_last", "John", "", FieldLastName, "Last name cannot be empty."},
		{"whitespace_first", "   ", "Doe", FieldFirstName, "First name cannot be empty."},
		{"whitespace_last", "John", " \t\n", FieldLastName, "Last name cannot be empty."},
		{"both_empty_reports_first", "", "", FieldFirstName, "First name cannot be empty."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)

			id, err := s.Insert(context.Background(), tt.first, tt.last)
			require.Error(t, err)
			assert.Equal(t, int64(0), id)
			assert.True(t, IsValidationError(err))
			assert.False(t, IsStorageError(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Error())

			// Validation happens before the schema is touched
			ok, err := s.hasSchema(context.Background())
			require.NoError(t, err)
			assert.False(t, ok, "no table should be created for invalid input")
		})
	}
}

func TestInsert_SequentialIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id1, err := s.Insert(ctx, "Alice", "Brown")
	require.NoError(t, err)
	id2, err := s.Insert(ctx, "Charlie", "Davis")
	require.NoError(t, err)
	id3, err := s.Insert(ctx, "Eve", "Miller")
	require.NoError(t, err)

	assert.Equal(t, id1+1, id2)
	assert.Equal(t, id2+1, id3)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, id1, records[0].ID)
	assert.Equal(t, "Alice", records[0].FirstName)
	assert.Equal(t, id2, records[1].ID)
	assert.Equal(t, "Charlie", records[1].FirstName)
	assert.Equal(t, id3, records[2].ID)
	assert.Equal(t, "Miller", records[2].LastName)
}

func TestInsert_ClosedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	id, err := s.Insert(context.Background(), "John", "Doe")
	require.Error(t, err)
	assert.Equal(t, int64(0), id)
	assert.True(t, IsStorageError(err))
}

func TestStoreName_OpensAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.db")
	ctx := context.Background()

	id1, err := StoreName(ctx, path, "John", "Doe")
	require.NoError(t, err)
	id2, err := StoreName(ctx, path, "Jane", "Smith")
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)

	records, err := ListNames(ctx, path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "John", records[0].FirstName)
	assert.Equal(t, "Smith", records[1].LastName)
}

func TestStoreName_InvalidInputDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.db")

	id, err := StoreName(context.Background(), path, "", "Doe")
	require.Error(t, err)
	assert.Equal(t, int64(0), id)
	assert.True(t, IsValidationError(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "database file should not exist")
}

func TestStoreName_UnwritablePath(t *testing.T) {
	id, err := StoreName(context.Background(), "/nonexistent/dir/names.db", "John", "Doe")
	require.Error(t, err)
	assert.Equal(t, int64(0), id)
	assert.True(t, IsStorageError(err))
}
