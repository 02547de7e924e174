package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rankers-app/rankers-api/internal/api"
	apiMiddleware "github.com/rankers-app/rankers-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService)
	learningHandler := api.NewLearningHandler(app.progressService)
	communityHandler := api.NewCommunityHandler(app.progressService, app.communityService)
	mentorHandler := api.NewMentorHandler(app.mentorService)
	profileHandler := api.NewProfileHandler(app.userService, app.progressService, app.communityService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/guest", authHandler.Guest)

		// Catalog endpoints (public)
		r.Get("/subjects", learningHandler.ListSubjects)
		r.Get("/topics/{id}", learningHandler.GetTopic)
		r.Get("/leaderboard", profileHandler.Leaderboard)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Learning endpoints
			r.Get("/subjects/{subject}/topics", learningHandler.ListTopics)
			r.Post("/topics/{id}/complete", learningHandler.CompleteTopic)

			// Community endpoints
			r.Get("/feed", communityHandler.Feed)
			r.Post("/posts/{id}/like", communityHandler.LikePost)
			r.Post("/community/mastery", communityHandler.DeclareMastery)
			r.Post("/community/notes", communityHandler.ShareNote)
			r.Post("/circles/{subject}", communityHandler.JoinCircle)
			r.Delete("/circles/{subject}", communityHandler.LeaveCircle)

			// Mentor endpoints
			r.Post("/mentor/narrate", mentorHandler.Narrate)
			r.Post("/mentor/analyze", mentorHandler.Analyze)
			r.Post("/mentor/plan", mentorHandler.Plan)

			// Profile endpoints
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile/intro-video", profileHandler.SetIntroVideo)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
