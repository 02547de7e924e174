package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/store"
)

// PostStore is the in-memory implementation of store.PostStore. The
// feed is kept newest-first; seed posts sit at the tail.
type PostStore struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// Compile-time interface check.
var _ store.PostStore = (*PostStore)(nil)

// NewPostStore creates a feed pre-populated with the given seed posts,
// assumed to already be in newest-first order.
func NewPostStore(seed []domain.Post) *PostStore {
	posts := make([]domain.Post, len(seed))
	copy(posts, seed)
	return &PostStore{posts: posts}
}

// Prepend inserts the post at the head of the feed.
func (s *PostStore) Prepend(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]domain.Post{*post}, s.posts...)
	return nil
}

// List returns a copy of the feed, newest first.
func (s *PostStore) List(ctx context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

// Like increments the post's like counter and returns the new count.
func (s *PostStore) Like(ctx context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes++
			return s.posts[i].Likes, nil
		}
	}
	return 0, store.ErrPostNotFound
}
