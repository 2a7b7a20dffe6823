package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when a task is inserted under an ID that is
	// already in use.
	ErrDuplicateID = errors.New("duplicate task ID")

	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")
)

// DuplicateIDError reports a rejected insert. It matches ErrDuplicateID
// with errors.Is.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("task %s already exists", FormatTaskID(e.ID))
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}
