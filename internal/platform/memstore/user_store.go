package memstore

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/store"
)

// UserStore is the in-memory implementation of store.UserStore.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.User
	byEmail    map[string]uuid.UUID
	bcryptCost int
}

// Compile-time interface check.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore. bcryptCost of 0 falls back
// to the bcrypt default.
func NewUserStore(bcryptCost int) *UserStore {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{
		byID:       make(map[uuid.UUID]*domain.User),
		byEmail:    make(map[string]uuid.UUID),
		bcryptCost: bcryptCost,
	}
}

// Create validates the user, hashes any plaintext password, and stores
// the record. The plaintext password is cleared before storage.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emailKey := normalizeEmail(user.Email)
	if emailKey != "" {
		if _, exists := s.byEmail[emailKey]; exists {
			return store.ErrEmailExists
		}
	}

	stored := *user
	if stored.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(stored.Password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		stored.HashedPassword = string(hashed)
		stored.Password = ""
	}

	s.byID[stored.ID] = &stored
	if emailKey != "" {
		s.byEmail[emailKey] = stored.ID
	}
	return nil
}

// GetByID retrieves a copy of the user with the given id.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail retrieves a copy of the user with the given email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *s.byID[id]
	return &copied, nil
}

// Update replaces the stored record for the user's id.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}

	stored := *user
	// Progression updates never carry credentials; keep the stored hash.
	if stored.HashedPassword == "" {
		stored.HashedPassword = existing.HashedPassword
	}
	stored.Password = ""

	s.byID[user.ID] = &stored
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
