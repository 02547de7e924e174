package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
)

// MentorService fronts the content generator with catalog context: it
// resolves topic ids, scopes study plans to the caller's progress, and
// leaves everything about request shaping and retries to the generator.
type MentorService struct {
	generator generation.ContentGenerator
	progress  *ProgressService
	logger    *slog.Logger
}

// NewMentorService creates a new MentorService.
func NewMentorService(generator generation.ContentGenerator, progress *ProgressService, logger *slog.Logger) *MentorService {
	return &MentorService{
		generator: generator,
		progress:  progress,
		logger:    logger.With("component", "mentor_service"),
	}
}

// Narrate synthesizes spoken narration for a catalog topic's content.
// Returns ErrUnknownTopic for ids not in the catalog.
func (s *MentorService) Narrate(ctx context.Context, topicID string, voice generation.Voice) (*generation.Narration, error) {
	topic, ok := catalog.TopicByID(topicID)
	if !ok {
		return nil, ErrUnknownTopic
	}

	narration, err := s.generator.SynthesizeNarration(ctx, topic.Content, voice)
	if err != nil {
		s.logger.Error("narration failed",
			"error", err,
			"topic_id", topicID)
		return nil, err
	}

	s.logger.Info("narration synthesized",
		"topic_id", topicID,
		"frames", narration.FrameCount())

	return narration, nil
}

// Analyze returns a strategic tip for a practice question.
func (s *MentorService) Analyze(ctx context.Context, questionText string) (string, error) {
	tip, err := s.generator.AnalyzeQuestion(ctx, questionText)
	if err != nil {
		s.logger.Error("question analysis failed", "error", err)
		return "", err
	}
	return tip, nil
}

// Plan builds a 7-day study plan over the whole catalog, scoped to the
// given subjects and informed by the user's completed topics.
func (s *MentorService) Plan(ctx context.Context, userID uuid.UUID, subjects []domain.Subject, targetDate string) ([]generation.StudyPlanEntry, error) {
	for _, subject := range subjects {
		if !subject.Valid() {
			return nil, domain.ErrUnknownSubject
		}
	}

	completed, err := s.progress.CompletedTopics(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.generator.GenerateStudyPlan(ctx, subjects, targetDate, catalog.Topics(), completed)
	if err != nil {
		s.logger.Error("study plan generation failed",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	s.logger.Info("study plan generated",
		"user_id", userID,
		"days", len(plan))

	return plan, nil
}
