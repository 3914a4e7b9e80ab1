package store

import (
	"errors"
	"fmt"
)

// Field names used in validation errors.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)

// ValidationError reports a name that is empty once trimmed.
// Nothing is written to the database when Insert returns one.
type ValidationError struct {
	// Field is FieldFirstName or FieldLastName.
	Field string

	// Message is the human-readable diagnostic.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError reports a failure in the underlying database.
type StorageError struct {
	// Op names the operation that failed ("open", "insert", "list", ...).
	Op string

	// Err is the driver error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorageError returns true if err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func newEmptyNameError(field string) *ValidationError {
	label := "First name"
	if field == FieldLastName {
		label = "Last name"
	}
	return &ValidationError{
		Field:   field,
		Message: label + " cannot be empty.",
	}
}
