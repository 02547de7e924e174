package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/service/auth"
	"github.com/rankers-app/rankers-api/internal/store"
)

// AuthResult pairs a user with the access token issued for them.
type AuthResult struct {
	User  *domain.User
	Token string
}

// MediaUploader uploads user media to external storage and returns a
// public URL. The payload is whatever the storage backend accepts
// directly: a URL or a base64 data URI.
type MediaUploader interface {
	UploadNoteImage(ctx context.Context, data string) (string, error)
	UploadIntroVideo(ctx context.Context, data string) (string, error)
}

// UserService provides account lifecycle and profile operations.
type UserService interface {
	// Register creates a credentialed account and issues a token for it.
	// Returns store.ErrEmailExists if the email is taken.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Login verifies credentials and issues a token.
	// Returns ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Guest creates an anonymous account and issues a token for it.
	// Guest accounts have no credentials and cannot log in again.
	Guest(ctx context.Context, name string) (*AuthResult, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// SetIntroVideo uploads the user's journey video and stores its URL
	// on the profile. Returns ErrMediaDisabled when no uploader is
	// configured.
	SetIntroVideo(ctx context.Context, userID uuid.UUID, videoData string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	jwt       auth.JWTService
	verifier  auth.PasswordVerifier
	uploader  MediaUploader // nil when media is not configured
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService. uploader may be nil, in
// which case intro-video uploads are rejected with ErrMediaDisabled.
func NewUserService(
	userStore store.UserStore,
	jwt auth.JWTService,
	verifier auth.PasswordVerifier,
	uploader MediaUploader,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		jwt:       jwt,
		verifier:  verifier,
		uploader:  uploader,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a credentialed account and issues a token for it.
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			s.logger.Error("failed to create user",
				"error", err,
				"email", email)
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if user.IsGuest || user.HashedPassword == "" {
		return nil, ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}

// Guest creates an anonymous account and issues a token for it.
func (s *UserServiceImpl) Guest(ctx context.Context, name string) (*AuthResult, error) {
	user := domain.NewGuestUser(name)

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("failed to create guest user", "error", err)
		return nil, err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("guest user created", "user_id", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetIntroVideo uploads the user's journey video and stores its URL.
func (s *UserServiceImpl) SetIntroVideo(ctx context.Context, userID uuid.UUID, videoData string) (*domain.User, error) {
	if s.uploader == nil {
		return nil, ErrMediaDisabled
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.UploadIntroVideo(ctx, videoData)
	if err != nil {
		s.logger.Error("intro video upload failed",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to upload intro video: %w", err)
	}

	user.IntroVideoURL = url
	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("intro video updated", "user_id", userID)

	return user, nil
}
