package service

import (
	"context"
	"fmt"
)

// ThumbnailService fetches map thumbnails for coordinates
type ThumbnailService struct {
	provider MapImageProvider
}

// MapImageProvider interface for dependency injection
type MapImageProvider interface {
	Thumbnail(ctx context.Context, lat, lng float64) ([]byte, error)
}

// NewThumbnailService creates a new thumbnail service
func NewThumbnailService(provider MapImageProvider) *ThumbnailService {
	return &ThumbnailService{provider: provider}
}

// Thumbnail returns the raw image bytes for the coordinates. A successful
// upstream answer is passed through as is, even when it is empty.
func (s *ThumbnailService) Thumbnail(ctx context.Context, lat, lng float64) ([]byte, error) {
	image, err := s.provider.Thumbnail(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch thumbnail: %w", err)
	}

	return image, nil
}
