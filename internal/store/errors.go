package store

import "errors"

// Common store errors.
var (
	// ErrUserNotFound is returned when a user lookup finds no match.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when creating a user with an email that
	// is already registered.
	ErrEmailExists = errors.New("email already exists")

	// ErrPostNotFound is returned when a feed post lookup finds no match.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidEntity is returned when an entity fails validation on its
	// way into the store.
	ErrInvalidEntity = errors.New("invalid entity")
)
