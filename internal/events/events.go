// Package events carries one-time progression facts (level-ups, mastery
// unlocks, note shares) from the service layer to whoever wants to react
// to them, without the services knowing who that is. The engine itself
// never emits anything; it returns event values and the services publish
// them here.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// ProgressEventType names the progression facts that can be published.
type ProgressEventType string

const (
	EventLevelUp        ProgressEventType = "level_up"
	EventTopicCompleted ProgressEventType = "topic_completed"
	EventMasteryUnlock  ProgressEventType = "mastery_unlocked"
	EventNoteShared     ProgressEventType = "note_shared"
)

// ProgressEvent is one progression fact about one user. Fields that do
// not apply to the event type are zero.
type ProgressEvent struct {
	ID     uuid.UUID         `json:"id"`
	Type   ProgressEventType `json:"type"`
	UserID uuid.UUID         `json:"user_id"`

	Level   int            `json:"level,omitempty"`
	TopicID string         `json:"topic_id,omitempty"`
	Subject domain.Subject `json:"subject,omitempty"`
	XPDelta int            `json:"xp_delta,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewProgressEvent creates an event of the given type for the user.
func NewProgressEvent(eventType ProgressEventType, userID uuid.UUID) *ProgressEvent {
	return &ProgressEvent{
		ID:        uuid.New(),
		Type:      eventType,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle
// progress events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ProgressEvent) error
}

// EventEmitter defines an interface for components that can emit
// progress events. This allows services to publish events without
// direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ProgressEvent) error
}
