package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

// NotFoundError reports which entity kind and id a lookup failed for.
// errors.Is(err, ErrNotFound) matches it.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a malformed field in a create or update payload.
// errors.Is(err, ErrInvalid) matches it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }
