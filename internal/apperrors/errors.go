// Package apperrors defines the error categories shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when an entity does not exist or is not visible
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when required fields are missing or inconsistent
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned on duplicate unique keys
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is returned on dangling foreign references
	ErrInvalidReference = errors.New("invalid reference")
)

// MySQL server error numbers for constraint violations
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrForeignKey     = 1452
	mysqlErrNoReferenced   = 1216
)

// NotFound creates a not-found error for the named entity
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// Validation creates a validation error with a caller-facing message
func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

// FromSQL maps MySQL constraint violations onto the error taxonomy.
// Unrecognized errors pass through unchanged and are treated as internal.
func FromSQL(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return fmt.Errorf("%s: %w", mysqlErr.Message, ErrConflict)
		case mysqlErrForeignKey, mysqlErrNoReferenced:
			return fmt.Errorf("%s: %w", mysqlErr.Message, ErrInvalidReference)
		}
	}
	return err
}
