package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// PostStore defines the interface for the community feed. The feed is
// ordered newest-first; posts are immutable once inserted except for
// their like counter, which the store owns.
type PostStore interface {
	// Prepend inserts a post at the head of the feed.
	// Returns ErrInvalidEntity when the post fails validation.
	Prepend(ctx context.Context, post *domain.Post) error

	// List returns the feed newest-first.
	List(ctx context.Context) ([]domain.Post, error)

	// Like increments a post's like counter and returns the new count.
	// Returns ErrPostNotFound if the post does not exist.
	Like(ctx context.Context, id uuid.UUID) (int, error)
}

// ProgressStore tracks each user's completed-topic set for the session.
// The set is append-only; the progression engine enforces that, and the
// store just holds whatever the engine produced.
type ProgressStore interface {
	// CompletedTopics returns the user's completed topic ids in
	// completion order. An unknown user simply has none yet.
	CompletedTopics(ctx context.Context, userID uuid.UUID) ([]string, error)

	// SaveCompletedTopics replaces the user's completed-topic set with
	// the value the engine returned.
	SaveCompletedTopics(ctx context.Context, userID uuid.UUID, topicIDs []string) error
}

// CircleStore tracks study-circle membership: a plain per-user set of
// subjects with no further semantics.
type CircleStore interface {
	// Join adds the subject to the user's joined set. Joining twice is a
	// no-op.
	Join(ctx context.Context, userID uuid.UUID, subject domain.Subject) error

	// Leave removes the subject from the user's joined set. Leaving a
	// circle the user is not in is a no-op.
	Leave(ctx context.Context, userID uuid.UUID, subject domain.Subject) error

	// Joined returns the subjects the user is currently a member of.
	Joined(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error)
}
