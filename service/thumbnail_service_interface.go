package service

import (
	"context"

	"figure-studio/models"
)

// ThumbnailServiceInterface defines the interface for thumbnail operations
type ThumbnailServiceInterface interface {
	Candidates(entry models.CatalogEntry, colorID int) []string
	Resolve(ctx context.Context, entry models.CatalogEntry, colorID int, emit func(models.ThumbnailTransition)) (models.ThumbnailResolution, error)
	Image(ctx context.Context, entry models.CatalogEntry, colorID int, size string) ([]byte, error)
	Warmup(ctx context.Context, entries []models.CatalogEntry) (*WarmupReport, error)
}
