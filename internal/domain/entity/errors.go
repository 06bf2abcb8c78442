package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the domain layer. Usecase packages
// define operation-specific sentinels of their own.
var (
	// ErrNotFound reports a missing entity, a movie or a session.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput reports a request that failed domain validation.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries the failing field alongside the message so
// handlers can map it to a structured 400 body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
