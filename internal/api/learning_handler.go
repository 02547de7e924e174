package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rankers-app/rankers-api/internal/api/shared"
	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/service"
)

// LearningHandler serves the syllabus catalog and topic completion.
type LearningHandler struct {
	progressService *service.ProgressService
}

// NewLearningHandler creates a new LearningHandler with the given dependencies.
func NewLearningHandler(progressService *service.ProgressService) *LearningHandler {
	return &LearningHandler{
		progressService: progressService,
	}
}

// ListSubjects handles GET /api/subjects.
func (h *LearningHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	infos := catalog.Subjects()
	subjects := make([]SubjectResponse, 0, len(infos))
	for _, info := range infos {
		subjects = append(subjects, SubjectResponse{
			Subject: info.Subject,
			Icon:    info.Icon,
			Color:   info.Color,
			Badge:   info.Badge,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, subjects)
}

// ListTopics handles GET /api/subjects/{subject}/topics. The caller's
// progress is folded into the response.
func (h *LearningHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	subject, err := getPathSubject(r, "subject")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	completed, err := h.progressService.CompletedTopics(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load progress")
		return
	}

	eligible, err := h.progressService.Eligibility(r.Context(), userID, subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check eligibility")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TopicListResponse{
		Subject:            subject,
		Topics:             catalog.TopicsBySubject(subject),
		CompletedTopicIDs:  completed,
		EligibleForMastery: eligible,
	})
}

// GetTopic handles GET /api/topics/{id}.
func (h *LearningHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "id")

	topic, ok := catalog.TopicByID(topicID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Topic not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, topic)
}

// CompleteTopic handles POST /api/topics/{id}/complete.
func (h *LearningHandler) CompleteTopic(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	topicID := chi.URLParam(r, "id")

	result, err := h.progressService.CompleteTopic(r.Context(), userID, topicID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to complete topic")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompletionResponse{
		User:              result.User,
		CompletedTopicIDs: result.CompletedTopics,
		XPAwarded:         result.XPDelta,
		LeveledUp:         result.LevelUp != nil,
	})
}
