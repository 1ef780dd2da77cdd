package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError lists the form fields that failed validation. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// PersistenceError is a failed or rolled back transaction. Op names the
// operation; Err keeps the cause for logs and is never shown to users.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError unless it already is one.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound reports whether err is one of the missing-entity sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) || errors.Is(err, ErrArtistNotFound)
}
