package repository

import (
	"context"
	"errors"

	"figure-studio/models"
)

var (
	// ErrSnapshotNotFound is returned when no catalog snapshot has been stored yet
	ErrSnapshotNotFound = errors.New("catalog snapshot not found")
	// ErrLookNotFound is returned when a look id does not exist
	ErrLookNotFound = errors.New("look not found")
)

// CatalogRepositoryInterface defines the contract for catalog snapshot persistence
type CatalogRepositoryInterface interface {
	ReplaceSnapshot(ctx context.Context, entries []models.CatalogEntry) (int64, error)
	LoadLatestSnapshot(ctx context.Context) (*models.CatalogSnapshot, error)
}

// LookRepositoryInterface defines the contract for saved look operations
type LookRepositoryInterface interface {
	Save(ctx context.Context, look *models.Look) error
	GetByID(ctx context.Context, id string) (*models.Look, error)
	ListRecent(ctx context.Context, limit int) ([]models.Look, error)
}
