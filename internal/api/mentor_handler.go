package api

import (
	"net/http"

	"github.com/rankers-app/rankers-api/internal/api/shared"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
	"github.com/rankers-app/rankers-api/internal/service"
)

// MentorHandler serves the AI mentor endpoints: narration, question
// analysis, and study plan generation.
type MentorHandler struct {
	mentorService *service.MentorService
}

// NewMentorHandler creates a new MentorHandler with the given dependencies.
func NewMentorHandler(mentorService *service.MentorService) *MentorHandler {
	return &MentorHandler{
		mentorService: mentorService,
	}
}

// Narrate handles POST /api/mentor/narrate.
func (h *MentorHandler) Narrate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req NarrationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	voice := generation.DefaultVoice
	if req.Voice != "" {
		voice = generation.Voice(req.Voice)
	}

	narration, err := h.mentorService.Narrate(r.Context(), req.TopicID, voice)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to synthesize narration")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NarrationResponse{
		Samples:    narration.Samples,
		SampleRate: narration.SampleRate,
		Channels:   narration.Channels,
	})
}

// Analyze handles POST /api/mentor/analyze.
func (h *MentorHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req AnalyzeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tip, err := h.mentorService.Analyze(r.Context(), req.Question)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeResponse{Tip: tip})
}

// Plan handles POST /api/mentor/plan.
func (h *MentorHandler) Plan(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	subjects := make([]domain.Subject, 0, len(req.Subjects))
	for _, raw := range req.Subjects {
		subject, err := domain.ParseSubject(raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		subjects = append(subjects, subject)
	}

	schedule, err := h.mentorService.Plan(r.Context(), userID, subjects, req.TargetDate)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate study plan")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlanResponse{Schedule: schedule})
}
