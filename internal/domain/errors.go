package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownSubject is returned when a string does not name a member
	// of the closed subject set.
	ErrUnknownSubject = errors.New("unknown subject")

	// ErrInvalidPostType is returned when a post type is not one of the
	// recognized feed entry kinds.
	ErrInvalidPostType = errors.New("invalid post type")

	// ErrInvalidQuestionType is returned when a question is neither
	// Prelims nor Mains.
	ErrInvalidQuestionType = errors.New("invalid question type")
)

// ValidationError wraps a sentinel error with the field that failed.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the underlying sentinel for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
