package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/store"
)

// ProgressStore is the in-memory implementation of store.ProgressStore.
type ProgressStore struct {
	mu        sync.RWMutex
	completed map[uuid.UUID][]string
}

// Compile-time interface check.
var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates an empty ProgressStore.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{completed: make(map[uuid.UUID][]string)}
}

// CompletedTopics returns the user's completed topic ids in completion
// order. Users with no completions yet get an empty slice.
func (s *ProgressStore) CompletedTopics(ctx context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	existing := s.completed[userID]
	out := make([]string, len(existing))
	copy(out, existing)
	return out, nil
}

// SaveCompletedTopics replaces the user's completed-topic set.
func (s *ProgressStore) SaveCompletedTopics(ctx context.Context, userID uuid.UUID, topicIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]string, len(topicIDs))
	copy(stored, topicIDs)
	s.completed[userID] = stored
	return nil
}

// CircleStore is the in-memory implementation of store.CircleStore.
type CircleStore struct {
	mu     sync.RWMutex
	joined map[uuid.UUID]map[domain.Subject]bool
}

// Compile-time interface check.
var _ store.CircleStore = (*CircleStore)(nil)

// NewCircleStore creates an empty CircleStore.
func NewCircleStore() *CircleStore {
	return &CircleStore{joined: make(map[uuid.UUID]map[domain.Subject]bool)}
}

// Join adds the subject to the user's joined set.
func (s *CircleStore) Join(ctx context.Context, userID uuid.UUID, subject domain.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.joined[userID] == nil {
		s.joined[userID] = make(map[domain.Subject]bool)
	}
	s.joined[userID][subject] = true
	return nil
}

// Leave removes the subject from the user's joined set.
func (s *CircleStore) Leave(ctx context.Context, userID uuid.UUID, subject domain.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.joined[userID], subject)
	return nil
}

// Joined returns the subjects the user is a member of, in catalog order
// so the listing is stable.
func (s *CircleStore) Joined(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memberships := s.joined[userID]
	out := []domain.Subject{}
	for _, subject := range domain.AllSubjects() {
		if memberships[subject] {
			out = append(out, subject)
		}
	}
	return out, nil
}
