package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/api/shared"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/service"
)

// CommunityHandler serves the feed, likes, mastery declarations, note
// shares, and study circles.
type CommunityHandler struct {
	progressService  *service.ProgressService
	communityService *service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler with the given dependencies.
func NewCommunityHandler(
	progressService *service.ProgressService,
	communityService *service.CommunityService,
) *CommunityHandler {
	return &CommunityHandler{
		progressService:  progressService,
		communityService: communityService,
	}
}

// Feed handles GET /api/feed.
func (h *CommunityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.communityService.Feed(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load feed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// LikePost handles POST /api/posts/{id}/like.
func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	likes, err := h.communityService.LikePost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to like post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LikeResponse{Likes: likes})
}

// DeclareMastery handles POST /api/community/mastery.
func (h *CommunityHandler) DeclareMastery(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req MasteryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	subject, err := domain.ParseSubject(req.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.progressService.DeclareMastery(r.Context(), userID, subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to declare mastery")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MasteryResponse{
		User:      result.User,
		Post:      result.Post,
		LeveledUp: result.LevelUp != nil,
	})
}

// ShareNote handles POST /api/community/notes.
func (h *CommunityHandler) ShareNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req NoteShareRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.progressService.ShareNote(r.Context(), userID, req.TopicTitle, req.NoteImage)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to share note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NoteShareResponse{
		User:      result.User,
		Post:      result.Post,
		XPAwarded: result.XPDelta,
		LeveledUp: result.LevelUp != nil,
	})
}

// JoinCircle handles POST /api/circles/{subject}.
func (h *CommunityHandler) JoinCircle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	subject, err := getPathSubject(r, "subject")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.communityService.JoinCircle(r.Context(), userID, subject); err != nil {
		HandleAPIError(w, r, err, "Failed to join circle")
		return
	}

	h.respondWithCircles(w, r, userID)
}

// LeaveCircle handles DELETE /api/circles/{subject}.
func (h *CommunityHandler) LeaveCircle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	subject, err := getPathSubject(r, "subject")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.communityService.LeaveCircle(r.Context(), userID, subject); err != nil {
		HandleAPIError(w, r, err, "Failed to leave circle")
		return
	}

	h.respondWithCircles(w, r, userID)
}

func (h *CommunityHandler) respondWithCircles(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	joined, err := h.communityService.JoinedCircles(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load circles")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CirclesResponse{Subjects: joined})
}
