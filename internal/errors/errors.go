// Package errors defines the sentinel errors the use cases return and the
// HTTP layer maps to status codes. Repositories translate driver errors into
// these before they leave the persistence layer.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup for a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that collides with existing data, such as a
	// duplicate plate or a yard that still has motorcycles.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput marks input that failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials marks a login attempt with an unknown login key
	// or a wrong secret. Callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized marks a request without valid authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks an authenticated request that lacks permission.
	ErrForbidden = errors.New("forbidden")
)

// New returns a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping the sentinel reachable via Is.
// Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
