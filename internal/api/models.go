package api

import (
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// GuestRequest defines the payload for the guest sign-in endpoint.
// Name is optional; a default is used when absent.
type GuestRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// SubjectResponse describes one syllabus subject with its presentation
// metadata and the badge earned by mastering it, if any.
type SubjectResponse struct {
	Subject domain.Subject `json:"subject"`
	Icon    string         `json:"icon"`
	Color   string         `json:"color"`
	Badge   *domain.Badge  `json:"badge,omitempty"`
}

// TopicListResponse is the response for a subject's topic listing. The
// caller's progress is folded in so the client can render state without
// a second request.
type TopicListResponse struct {
	Subject            domain.Subject `json:"subject"`
	Topics             []domain.Topic `json:"topics"`
	CompletedTopicIDs  []string       `json:"completed_topic_ids"`
	EligibleForMastery bool           `json:"eligible_for_mastery"`
}

// CompletionResponse is the response for a topic completion.
type CompletionResponse struct {
	User              *domain.User `json:"user"`
	CompletedTopicIDs []string     `json:"completed_topic_ids"`
	XPAwarded         int          `json:"xp_awarded"`
	LeveledUp         bool         `json:"leveled_up"`
}

// MasteryRequest defines the payload for declaring subject mastery.
type MasteryRequest struct {
	Subject string `json:"subject" validate:"required"`
}

// MasteryResponse is the response for a successful mastery declaration.
type MasteryResponse struct {
	User      *domain.User `json:"user"`
	Post      *domain.Post `json:"post"`
	LeveledUp bool         `json:"leveled_up"`
}

// NoteShareRequest defines the payload for sharing session notes.
// NoteImage is optional: a URL or base64 data URI for the notes image.
type NoteShareRequest struct {
	TopicTitle string `json:"topic_title" validate:"required,min=1,max=200"`
	NoteImage  string `json:"note_image,omitempty"`
}

// NoteShareResponse is the response for a note share.
type NoteShareResponse struct {
	User      *domain.User `json:"user"`
	Post      *domain.Post `json:"post"`
	XPAwarded int          `json:"xp_awarded"`
	LeveledUp bool         `json:"leveled_up"`
}

// LikeResponse carries a post's like count after a like.
type LikeResponse struct {
	Likes int `json:"likes"`
}

// CirclesResponse lists the subjects whose study circles the user has
// joined.
type CirclesResponse struct {
	Subjects []domain.Subject `json:"subjects"`
}

// NarrationRequest defines the payload for topic narration.
type NarrationRequest struct {
	TopicID string `json:"topic_id" validate:"required"`
	Voice   string `json:"voice,omitempty"   validate:"omitempty,oneof=Kore Puck Charon"`
}

// NarrationResponse carries decoded narration audio ready for playback.
type NarrationResponse struct {
	Samples    []float64 `json:"samples"`
	SampleRate int       `json:"sample_rate"`
	Channels   int       `json:"channels"`
}

// AnalyzeRequest defines the payload for question analysis.
type AnalyzeRequest struct {
	Question string `json:"question" validate:"required,min=1"`
}

// AnalyzeResponse carries the mentor's strategic tip.
type AnalyzeResponse struct {
	Tip string `json:"tip"`
}

// PlanRequest defines the payload for study plan generation.
type PlanRequest struct {
	Subjects   []string `json:"subjects"    validate:"required,min=1"`
	TargetDate string   `json:"target_date" validate:"required"`
}

// PlanResponse carries the generated 7-day schedule.
type PlanResponse struct {
	Schedule []generation.StudyPlanEntry `json:"schedule"`
}

// ProfileResponse is the aggregate profile view: the user plus their
// session progress and circle memberships.
type ProfileResponse struct {
	User              *domain.User     `json:"user"`
	CompletedTopicIDs []string         `json:"completed_topic_ids"`
	Circles           []domain.Subject `json:"circles"`
}

// IntroVideoRequest defines the payload for setting the journey video.
// VideoData is a URL or base64 data URI for the video.
type IntroVideoRequest struct {
	VideoData string `json:"video_data" validate:"required"`
}

// LeaderboardResponse carries the session leaderboard.
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}
