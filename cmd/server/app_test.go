package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/config"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/events"
	"github.com/rankers-app/rankers-api/internal/generation"
	"github.com/rankers-app/rankers-api/internal/platform/memstore"
	"github.com/rankers-app/rankers-api/internal/service"
	"github.com/rankers-app/rankers-api/internal/service/auth"
)

type noopGenerator struct{}

func (noopGenerator) SynthesizeNarration(context.Context, string, generation.Voice) (*generation.Narration, error) {
	return &generation.Narration{Samples: []float64{0}, SampleRate: 24000, Channels: 1}, nil
}

func (noopGenerator) AnalyzeQuestion(context.Context, string) (string, error) {
	return "tip", nil
}

func (noopGenerator) GenerateStudyPlan(context.Context, []domain.Subject, string, []domain.Topic, []string) ([]generation.StudyPlanEntry, error) {
	return nil, nil
}

// newTestApplication wires an application without touching external
// services.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "this-is-a-test-secret-with-at-least-32-chars",
			TokenLifetimeMinutes: 60,
			BcryptCost:           bcrypt.MinCost,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	userStore := memstore.NewUserStore(cfg.Auth.BcryptCost)
	postStore := memstore.NewPostStore(catalog.SeedPosts())
	progressStore := memstore.NewProgressStore()
	circleStore := memstore.NewCircleStore()

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))

	progressService := service.NewProgressService(
		userStore, progressStore, postStore, emitter, nil, nil, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore, jwtService, auth.NewBcryptVerifier(), nil, logger),
		progressService:  progressService,
		communityService: service.NewCommunityService(postStore, circleStore, logger),
		mentorService:    service.NewMentorService(noopGenerator{}, progressService, logger),
	}
}

func TestRouter_HealthCheck(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	// Public catalog route works without a token.
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/subjects", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	// Protected route refuses anonymous access.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Guest sign-in issues a token that opens the protected surface.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/guest", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var authResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &authResp))
	require.NotEmpty(t, authResp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
