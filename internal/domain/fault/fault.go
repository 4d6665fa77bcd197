// Package fault defines the error taxonomy shared by every usecase.
// The HTTP adapter maps these to status codes; anything outside the
// taxonomy is treated as an internal error and never leaks details.
package fault

import (
	"errors"
	"fmt"
)

// ErrSignatureMismatch is returned when a payment confirmation fails
// HMAC verification. No state changes when this is returned.
var ErrSignatureMismatch = errors.New("payment signature verification failed")

// ValidationError names the offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s %s", e.Field, e.Reason) }

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError names the referenced entity that is absent.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

// StateConflictError marks a transition attempted from a state that
// does not allow it (property not available, visit not deletable, ...).
type StateConflictError struct {
	Reason string
}

func (e *StateConflictError) Error() string { return e.Reason }

func StateConflict(format string, args ...any) error {
	return &StateConflictError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsStateConflict(err error) bool {
	var sc *StateConflictError
	return errors.As(err, &sc)
}
