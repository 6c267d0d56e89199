package service

import (
	"context"
	"time"

	"figure-studio/models"
)

// CatalogServiceInterface defines the interface for catalog operations
type CatalogServiceInterface interface {
	List(filter models.CatalogFilter) ([]models.CatalogEntry, error)
	Entry(family models.Family, garmentID int) (models.CatalogEntry, error)
	Reload(ctx context.Context) (*LoadReport, error)
	Status() CatalogStatus
}

// CatalogStatus describes the catalog currently served
type CatalogStatus struct {
	Entries      int                       `json:"entries"`
	ByProvenance map[models.Provenance]int `json:"byProvenance"`
	Origin       string                    `json:"origin"`
	LoadedAt     time.Time                 `json:"loadedAt"`
}

// CatalogService handles catalog listing and reload operations
type CatalogService struct {
	store  *CatalogStore
	loader *CatalogLoader
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(store *CatalogStore, loader *CatalogLoader) *CatalogService {
	return &CatalogService{store: store, loader: loader}
}

// List returns the filtered entries of the current catalog
func (s *CatalogService) List(filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	catalog, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return SearchCatalog(catalog, filter), nil
}

// Entry returns one entry of the current catalog
func (s *CatalogService) Entry(family models.Family, garmentID int) (models.CatalogEntry, error) {
	return s.store.Entry(family, garmentID)
}

// Reload refetches and reconciles every source
func (s *CatalogService) Reload(ctx context.Context) (*LoadReport, error) {
	return s.loader.Reload(ctx)
}

// Status reports the size and origin of the current catalog
func (s *CatalogService) Status() CatalogStatus {
	origin, loadedAt := s.store.Origin()
	catalog, _ := s.store.Current()
	return CatalogStatus{
		Entries:      catalog.Len(),
		ByProvenance: catalog.CountByProvenance(),
		Origin:       origin,
		LoadedAt:     loadedAt,
	}
}
