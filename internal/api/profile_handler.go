package api

import (
	"net/http"

	"github.com/rankers-app/rankers-api/internal/api/shared"
	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/service"
)

// ProfileHandler serves the caller's profile and the leaderboard.
type ProfileHandler struct {
	userService      service.UserService
	progressService  *service.ProgressService
	communityService *service.CommunityService
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(
	userService service.UserService,
	progressService *service.ProgressService,
	communityService *service.CommunityService,
) *ProfileHandler {
	return &ProfileHandler{
		userService:      userService,
		progressService:  progressService,
		communityService: communityService,
	}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load profile")
		return
	}

	completed, err := h.progressService.CompletedTopics(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load progress")
		return
	}

	circles, err := h.communityService.JoinedCircles(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load circles")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		User:              user,
		CompletedTopicIDs: completed,
		Circles:           circles,
	})
}

// SetIntroVideo handles PUT /api/profile/intro-video.
func (h *ProfileHandler) SetIntroVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req IntroVideoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.SetIntroVideo(r.Context(), userID, req.VideoData)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save intro video")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Leaderboard handles GET /api/leaderboard.
func (h *ProfileHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, LeaderboardResponse{
		Entries: catalog.Leaderboard(),
	})
}
