package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// UserStore defines the interface for user session-state access.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally;
	// guests are stored without credentials.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update replaces an existing user's record with the given value.
	// Progression operations produce whole new user values; the store
	// swaps them in rather than patching fields.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error
}
