package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/domain/progression"
	"github.com/rankers-app/rankers-api/internal/events"
	"github.com/rankers-app/rankers-api/internal/store"
)

// ProgressService runs the progression engine over stored state. Every
// operation is a read-modify-write: load the user and their completed
// topics, run the pure engine, persist whatever it produced, then emit
// events for what happened.
//
// A single mutex serializes all progression operations. State lives in
// memory and operations are cheap, so one writer at a time is enough to
// keep XP awards and completion sets consistent without per-user locks.
type ProgressService struct {
	mu sync.Mutex

	userStore     store.UserStore
	progressStore store.ProgressStore
	postStore     store.PostStore
	emitter       events.EventEmitter
	uploader      MediaUploader // nil when media is not configured
	params        *progression.Params
	logger        *slog.Logger
}

// NewProgressService creates a new ProgressService. emitter and uploader
// may be nil; events are then dropped and note images rejected.
func NewProgressService(
	userStore store.UserStore,
	progressStore store.ProgressStore,
	postStore store.PostStore,
	emitter events.EventEmitter,
	uploader MediaUploader,
	params *progression.Params,
	logger *slog.Logger,
) *ProgressService {
	if params == nil {
		params = progression.NewDefaultParams()
	}
	return &ProgressService{
		userStore:     userStore,
		progressStore: progressStore,
		postStore:     postStore,
		emitter:       emitter,
		uploader:      uploader,
		params:        params,
		logger:        logger.With("component", "progress_service"),
	}
}

// CompleteTopic marks a catalog topic completed for the user and awards
// its XP. Completing the same topic again is a no-op that still returns
// the current state. Returns ErrUnknownTopic for ids not in the catalog.
func (s *ProgressService) CompleteTopic(ctx context.Context, userID uuid.UUID, topicID string) (*progression.CompletionResult, error) {
	topic, ok := catalog.TopicByID(topicID)
	if !ok {
		return nil, ErrUnknownTopic
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.progressStore.CompletedTopics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed topics: %w", err)
	}

	result := progression.CompleteTopic(user, topicID, topic.XPReward, completed, s.params)
	if result.XPDelta == 0 {
		s.logger.Debug("topic already completed",
			"user_id", userID,
			"topic_id", topicID)
		return &result, nil
	}

	if err := s.userStore.Update(ctx, result.User); err != nil {
		return nil, err
	}
	if err := s.progressStore.SaveCompletedTopics(ctx, userID, result.CompletedTopics); err != nil {
		return nil, fmt.Errorf("failed to save completed topics: %w", err)
	}

	s.logger.Info("topic completed",
		"user_id", userID,
		"topic_id", topicID,
		"xp_delta", result.XPDelta,
		"level", result.User.Level)

	s.emitCompletion(ctx, userID, topicID, result.XPDelta)
	s.emitLevelUp(ctx, userID, result.LevelUp)

	return &result, nil
}

// Eligibility reports whether the user may declare mastery of a subject.
func (s *ProgressService) Eligibility(ctx context.Context, userID uuid.UUID, subject domain.Subject) (bool, error) {
	if !subject.Valid() {
		return false, domain.ErrUnknownSubject
	}

	completed, err := s.progressStore.CompletedTopics(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load completed topics: %w", err)
	}

	return progression.IsEligible(subject, catalog.Topics(), completed), nil
}

// DeclareMastery records that the user has mastered a subject: awards
// the mastery bonus, grants the subject badge when the catalog defines
// one, and prepends an achievement post to the feed. Returns
// ErrAlreadyMastered or ErrNotEligible when the declaration is refused.
func (s *ProgressService) DeclareMastery(ctx context.Context, userID uuid.UUID, subject domain.Subject) (*progression.MasteryResult, error) {
	if !subject.Valid() {
		return nil, domain.ErrUnknownSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.progressStore.CompletedTopics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed topics: %w", err)
	}

	if user.HasMastered(subject) {
		return nil, ErrAlreadyMastered
	}

	result := progression.DeclareMastery(user, subject, catalog.Topics(), completed, catalog.Badges(), s.params)
	if !result.Declared {
		return nil, ErrNotEligible
	}

	if err := s.userStore.Update(ctx, result.User); err != nil {
		return nil, err
	}
	if err := s.postStore.Prepend(ctx, result.Post); err != nil {
		return nil, fmt.Errorf("failed to publish mastery post: %w", err)
	}

	s.logger.Info("mastery declared",
		"user_id", userID,
		"subject", subject,
		"level", result.User.Level)

	s.emitMastery(ctx, userID, subject)
	s.emitLevelUp(ctx, userID, result.LevelUp)

	return &result, nil
}

// ShareNote publishes a recording post about a topic. When noteImage is
// non-empty it is uploaded first and its public URL attached, and the
// share earns the note bonus XP. Sharing is never deduplicated; two
// shares of the same topic are two posts.
func (s *ProgressService) ShareNote(ctx context.Context, userID uuid.UUID, topicTitle, noteImage string) (*progression.NoteShareResult, error) {
	var imageURL string
	if noteImage != "" {
		if s.uploader == nil {
			return nil, ErrMediaDisabled
		}
		url, err := s.uploader.UploadNoteImage(ctx, noteImage)
		if err != nil {
			s.logger.Error("note image upload failed",
				"error", err,
				"user_id", userID)
			return nil, fmt.Errorf("failed to upload note image: %w", err)
		}
		imageURL = url
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := progression.ShareNote(user, topicTitle, imageURL, s.params)

	if result.XPDelta != 0 {
		if err := s.userStore.Update(ctx, result.User); err != nil {
			return nil, err
		}
	}
	if err := s.postStore.Prepend(ctx, result.Post); err != nil {
		return nil, fmt.Errorf("failed to publish note post: %w", err)
	}

	s.logger.Info("note shared",
		"user_id", userID,
		"topic_title", topicTitle,
		"xp_delta", result.XPDelta)

	s.emitNoteShared(ctx, userID, result.XPDelta)
	s.emitLevelUp(ctx, userID, result.LevelUp)

	return &result, nil
}

// CompletedTopics returns the user's completed topic ids in completion
// order.
func (s *ProgressService) CompletedTopics(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.progressStore.CompletedTopics(ctx, userID)
}

func (s *ProgressService) emitCompletion(ctx context.Context, userID uuid.UUID, topicID string, xpDelta int) {
	if s.emitter == nil {
		return
	}
	event := events.NewProgressEvent(events.EventTopicCompleted, userID)
	event.TopicID = topicID
	event.XPDelta = xpDelta
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit completion event", "error", err)
	}
}

func (s *ProgressService) emitMastery(ctx context.Context, userID uuid.UUID, subject domain.Subject) {
	if s.emitter == nil {
		return
	}
	event := events.NewProgressEvent(events.EventMasteryUnlock, userID)
	event.Subject = subject
	event.XPDelta = s.params.MasteryBonusXP
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit mastery event", "error", err)
	}
}

func (s *ProgressService) emitNoteShared(ctx context.Context, userID uuid.UUID, xpDelta int) {
	if s.emitter == nil {
		return
	}
	event := events.NewProgressEvent(events.EventNoteShared, userID)
	event.XPDelta = xpDelta
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit note event", "error", err)
	}
}

func (s *ProgressService) emitLevelUp(ctx context.Context, userID uuid.UUID, levelUp *progression.LevelUp) {
	if s.emitter == nil || levelUp == nil {
		return
	}
	event := events.NewProgressEvent(events.EventLevelUp, userID)
	event.Level = levelUp.Level
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit level-up event", "error", err)
	}
}
