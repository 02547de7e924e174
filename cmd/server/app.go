package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/config"
	"github.com/rankers-app/rankers-api/internal/events"
	"github.com/rankers-app/rankers-api/internal/generation"
	"github.com/rankers-app/rankers-api/internal/platform/cloudinary"
	"github.com/rankers-app/rankers-api/internal/platform/gemini"
	"github.com/rankers-app/rankers-api/internal/platform/memstore"
	"github.com/rankers-app/rankers-api/internal/service"
	"github.com/rankers-app/rankers-api/internal/service/auth"
)

// application holds the wired dependencies of the running server. All
// state is in memory; a restart starts every aspirant over, which is the
// intended session model.
type application struct {
	config *config.Config
	logger *slog.Logger

	jwtService auth.JWTService

	userService      service.UserService
	progressService  *service.ProgressService
	communityService *service.CommunityService
	mentorService    *service.MentorService
}

// newApplication wires stores, services, and platform clients.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	var generator generation.ContentGenerator
	generator, err = gemini.NewGenerator(context.Background(), logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create content generator: %w", err)
	}

	// Media uploads are optional: without Cloudinary credentials the
	// server runs and rejects image/video payloads.
	var uploader service.MediaUploader
	if cfg.Media.MediaEnabled() {
		cld, err := cloudinary.NewUploader(cfg.Media)
		if err != nil {
			return nil, fmt.Errorf("failed to create media uploader: %w", err)
		}
		uploader = cld
		logger.Info("media uploads enabled", "cloud_name", cfg.Media.CloudName)
	} else {
		logger.Info("media uploads disabled: no cloudinary credentials")
	}

	userStore := memstore.NewUserStore(cfg.Auth.BcryptCost)
	postStore := memstore.NewPostStore(catalog.SeedPosts())
	progressStore := memstore.NewProgressStore()
	circleStore := memstore.NewCircleStore()

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))

	verifier := auth.NewBcryptVerifier()

	progressService := service.NewProgressService(
		userStore, progressStore, postStore, emitter, uploader, nil, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore, jwtService, verifier, uploader, logger),
		progressService:  progressService,
		communityService: service.NewCommunityService(postStore, circleStore, logger),
		mentorService:    service.NewMentorService(generator, progressService, logger),
	}, nil
}
