package repository

import (
	"context"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// Image defines persistence for generated card artwork
type Image interface {
	// FindCoveredKeys returns the subset of keys that have a ready image or a
	// pending one created at or after pendingSince.
	FindCoveredKeys(ctx context.Context, keys []domain.ImageKey, pendingSince time.Time) (map[domain.ImageKey]bool, error)
	// GetActiveImages returns the latest ready image per key, without data.
	GetActiveImages(ctx context.Context, keys []domain.ImageKey) (map[domain.ImageKey]domain.GeneratedImage, error)
	GetImage(ctx context.Context, id int64) (*domain.GeneratedImage, error)
	CreateImage(ctx context.Context, img *domain.GeneratedImage) error
	MarkImageReady(ctx context.Context, id int64, contentType string, data []byte) error
	MarkImageFailed(ctx context.Context, id int64) error
}
