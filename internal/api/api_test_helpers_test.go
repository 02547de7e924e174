package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apimiddleware "github.com/rankers-app/rankers-api/internal/api/middleware"
	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/config"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
	"github.com/rankers-app/rankers-api/internal/platform/memstore"
	"github.com/rankers-app/rankers-api/internal/service"
	"github.com/rankers-app/rankers-api/internal/service/auth"
)

// stubGenerator returns canned mentor responses.
type stubGenerator struct {
	narration *generation.Narration
	tip       string
	plan      []generation.StudyPlanEntry
	err       error
}

func (g *stubGenerator) SynthesizeNarration(_ context.Context, _ string, _ generation.Voice) (*generation.Narration, error) {
	return g.narration, g.err
}

func (g *stubGenerator) AnalyzeQuestion(_ context.Context, _ string) (string, error) {
	return g.tip, g.err
}

func (g *stubGenerator) GenerateStudyPlan(
	_ context.Context,
	_ []domain.Subject,
	_ string,
	_ []domain.Topic,
	_ []string,
) ([]generation.StudyPlanEntry, error) {
	return g.plan, g.err
}

// testServer wires the full API surface over in-memory stores.
type testServer struct {
	router http.Handler
}

func newTestServer(t *testing.T, generator generation.ContentGenerator) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "this-is-a-test-secret-with-at-least-32-chars",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	userStore := memstore.NewUserStore(bcrypt.MinCost)
	postStore := memstore.NewPostStore(catalog.SeedPosts())
	progressStore := memstore.NewProgressStore()
	circleStore := memstore.NewCircleStore()

	verifier := auth.NewBcryptVerifier()
	userService := service.NewUserService(userStore, jwtService, verifier, nil, logger)
	progressService := service.NewProgressService(userStore, progressStore, postStore, nil, nil, nil, logger)
	communityService := service.NewCommunityService(postStore, circleStore, logger)
	mentorService := service.NewMentorService(generator, progressService, logger)

	authHandler := NewAuthHandler(userService)
	learningHandler := NewLearningHandler(progressService)
	communityHandler := NewCommunityHandler(progressService, communityService)
	mentorHandler := NewMentorHandler(mentorService)
	profileHandler := NewProfileHandler(userService, progressService, communityService)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(apimiddleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/guest", authHandler.Guest)
		r.Get("/subjects", learningHandler.ListSubjects)
		r.Get("/topics/{id}", learningHandler.GetTopic)
		r.Get("/leaderboard", profileHandler.Leaderboard)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/subjects/{subject}/topics", learningHandler.ListTopics)
			r.Post("/topics/{id}/complete", learningHandler.CompleteTopic)
			r.Get("/feed", communityHandler.Feed)
			r.Post("/posts/{id}/like", communityHandler.LikePost)
			r.Post("/community/mastery", communityHandler.DeclareMastery)
			r.Post("/community/notes", communityHandler.ShareNote)
			r.Post("/circles/{subject}", communityHandler.JoinCircle)
			r.Delete("/circles/{subject}", communityHandler.LeaveCircle)
			r.Post("/mentor/narrate", mentorHandler.Narrate)
			r.Post("/mentor/analyze", mentorHandler.Analyze)
			r.Post("/mentor/plan", mentorHandler.Plan)
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile/intro-video", profileHandler.SetIntroVideo)
		})
	})

	return &testServer{router: r}
}

// do executes a request against the in-process router.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// guestToken creates a guest session and returns its token.
func (s *testServer) guestToken(t *testing.T) string {
	t.Helper()

	rr := s.do(t, http.MethodPost, "/api/auth/guest", "", GuestRequest{Name: "Test Aspirant"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
