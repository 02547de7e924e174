// Package cloudinary uploads user media (note images, journey videos)
// to Cloudinary. It is optional infrastructure: when the credentials
// are absent the server runs without it and media operations are
// rejected at the service layer.
package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/config"
)

// Uploader handles all Cloudinary operations.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

// NewUploader creates a new Cloudinary uploader from credentials.
func NewUploader(cfg config.MediaConfig) (*Uploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &Uploader{cld: cld}, nil
}

// UploadNoteImage uploads a note image and returns its public URL.
// data may be a remote URL or a base64 data URI; Cloudinary accepts
// both directly.
func (u *Uploader) UploadNoteImage(ctx context.Context, data string) (string, error) {
	publicID := fmt.Sprintf("notes/%s", uuid.New())

	uploadResult, err := u.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "rankers/notes",
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload note image: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// UploadIntroVideo uploads a journey video and returns its public URL.
func (u *Uploader) UploadIntroVideo(ctx context.Context, data string) (string, error) {
	publicID := fmt.Sprintf("journeys/%s", uuid.New())

	uploadResult, err := u.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "rankers/journeys",
		ResourceType: "video",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload intro video: %w", err)
	}

	return uploadResult.SecureURL, nil
}
