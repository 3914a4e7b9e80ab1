// Package store provides SQLite-backed storage for first/last name pairs.
//
// The store owns a single table:
//
//	names(id INTEGER PRIMARY KEY AUTOINCREMENT,
//	      first_name TEXT NOT NULL,
//	      last_name TEXT NOT NULL,
//	      created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)
//
// # Records
//
//   - IDs are assigned by SQLite at insert time, never by the caller
//   - Names are trimmed and must be non-empty once stored
//   - Records are never updated or deleted
//
// # Errors
//
// Every public operation returns a typed error instead of panicking:
//   - *ValidationError: empty or whitespace-only name, nothing written
//   - *StorageError: open, schema, query or scan failure
//
// Callers decide how to report them; the CLI prints a diagnostic and
// carries on with a "no id" or empty listing result.
//
// # Resource Scope
//
// StoreName and ListNames open the database file, run one operation and
// close it on every exit path. Open is available for callers that want to
// run several operations on one handle.
package store
