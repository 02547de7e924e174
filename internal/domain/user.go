package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNegativeXP          = errors.New("xp cannot be negative")
)

// User represents an aspirant's account and progression state for one
// session. XP is monotonically non-decreasing; Level is always derived
// from XP and must never be set independently of it.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	PhotoURL       string    `json:"photo_url"`
	IntroVideoURL  string    `json:"intro_video_url,omitempty"`
	IsGuest        bool      `json:"is_guest"`
	XP             int       `json:"xp"`
	Level          int       `json:"level"`
	Streak         int       `json:"streak"`
	Rank           int       `json:"rank,omitempty"`
	EarnedBadges   []string  `json:"earned_badges"`

	// CompletedSubjects grows only; declaring mastery of a subject that
	// is already present is a no-op.
	CompletedSubjects []Subject `json:"completed_subjects"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email, and password.
// Accounts start at zero XP and level 1 with a streak of one: the first
// sign-in counts as the first active day. Returns an error if validation
// fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		Password:          password,
		XP:                0,
		Level:             1,
		Streak:            1,
		EarnedBadges:      []string{},
		CompletedSubjects: []Subject{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NewGuestUser creates an ephemeral passwordless account. Guests share
// the same lifecycle as registered users: the account exists only for
// the duration of the process.
func NewGuestUser(name string) *User {
	if name == "" {
		name = "Guest Ranker"
	}
	now := time.Now().UTC()
	return &User{
		ID:                uuid.New(),
		Name:              name,
		Email:             "",
		IsGuest:           true,
		XP:                0,
		Level:             1,
		Streak:            1,
		EarnedBadges:      []string{},
		CompletedSubjects: []Subject{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.XP < 0 {
		return ErrNegativeXP
	}

	// Guests carry no credentials at all.
	if u.IsGuest {
		return nil
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Without a plaintext password the user must already carry a hash
		// (the case for accounts resumed from the store).
		return ErrEmptyPassword
	}

	return nil
}

// HasMastered reports whether the subject is already in the user's
// completed-subjects set.
func (u *User) HasMastered(subject Subject) bool {
	for _, s := range u.CompletedSubjects {
		if s == subject {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id has already been earned.
func (u *User) HasBadge(badgeID string) bool {
	for _, id := range u.EarnedBadges {
		if id == badgeID {
			return true
		}
	}
	return false
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	// The domain part needs at least "a.b" with an interior dot.
	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
