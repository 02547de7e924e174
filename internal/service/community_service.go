package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/store"
)

// CommunityService covers the social surface that does not touch
// progression: reading the feed, liking posts, and study-circle
// membership.
type CommunityService struct {
	postStore   store.PostStore
	circleStore store.CircleStore
	logger      *slog.Logger
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(postStore store.PostStore, circleStore store.CircleStore, logger *slog.Logger) *CommunityService {
	return &CommunityService{
		postStore:   postStore,
		circleStore: circleStore,
		logger:      logger.With("component", "community_service"),
	}
}

// Feed returns the community feed newest-first.
func (s *CommunityService) Feed(ctx context.Context) ([]domain.Post, error) {
	return s.postStore.List(ctx)
}

// LikePost increments a post's like counter and returns the new count.
// Likes are plain counters: not tied to the liker and never capped.
func (s *CommunityService) LikePost(ctx context.Context, postID uuid.UUID) (int, error) {
	likes, err := s.postStore.Like(ctx, postID)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("post liked",
		"post_id", postID,
		"likes", likes)

	return likes, nil
}

// JoinCircle adds the user to a subject's study circle.
func (s *CommunityService) JoinCircle(ctx context.Context, userID uuid.UUID, subject domain.Subject) error {
	if !subject.Valid() {
		return domain.ErrUnknownSubject
	}
	if err := s.circleStore.Join(ctx, userID, subject); err != nil {
		return err
	}

	s.logger.Info("joined study circle",
		"user_id", userID,
		"subject", subject)

	return nil
}

// LeaveCircle removes the user from a subject's study circle.
func (s *CommunityService) LeaveCircle(ctx context.Context, userID uuid.UUID, subject domain.Subject) error {
	if !subject.Valid() {
		return domain.ErrUnknownSubject
	}
	if err := s.circleStore.Leave(ctx, userID, subject); err != nil {
		return err
	}

	s.logger.Info("left study circle",
		"user_id", userID,
		"subject", subject)

	return nil
}

// JoinedCircles returns the subjects whose circles the user belongs to.
func (s *CommunityService) JoinedCircles(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error) {
	return s.circleStore.Joined(ctx, userID)
}
