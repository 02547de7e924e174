package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PostType tags the kind of feed entry a post is.
type PostType string

const (
	PostTypeAchievement PostType = "achievement"
	PostTypeRecording   PostType = "recording"
	PostTypeSubmission  PostType = "submission"
)

// Common validation errors for Post
var (
	ErrEmptyPostID      = errors.New("post ID cannot be empty")
	ErrEmptyPostContent = errors.New("post content cannot be empty")
	ErrEmptyPostAuthor  = errors.New("post author cannot be empty")
)

// Post is one entry in the community feed. Posts are immutable once
// created except for the like counter, which the feed store owns; the
// progression engine never touches likes.
type Post struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserAvatar   string    `json:"user_avatar"`
	Content      string    `json:"content"`
	Type         PostType  `json:"type"`
	NoteImageURL string    `json:"note_image_url,omitempty"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPost creates a feed post authored by the given user.
// Returns an error if validation fails.
func NewPost(author *User, postType PostType, content string) (*Post, error) {
	post := &Post{
		ID:         uuid.New(),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.PhotoURL,
		Content:    content,
		Type:       postType,
		Likes:      0,
		CreatedAt:  time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}
	if p.UserID == uuid.Nil {
		return ErrEmptyPostAuthor
	}
	if p.Content == "" {
		return ErrEmptyPostContent
	}
	switch p.Type {
	case PostTypeAchievement, PostTypeRecording, PostTypeSubmission:
	default:
		return ErrInvalidPostType
	}
	return nil
}
