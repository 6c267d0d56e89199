package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"figure-studio/figuredata"
	"figure-studio/models"
	"figure-studio/repository"
)

// ErrNoListings is returned when a reload got nothing from any source while a
// catalog is already being served; the current catalog is kept
var ErrNoListings = errors.New("no source produced any listing")

// SourceReport describes how one listing fetch went
type SourceReport struct {
	Provenance models.Provenance `json:"provenance"`
	Location   string            `json:"location"`
	Entries    int               `json:"entries"`
	Rejected   int               `json:"rejected"`
	Duration   string            `json:"duration"`
	Error      string            `json:"error,omitempty"`
}

// LoadReport summarizes a catalog reload
type LoadReport struct {
	Sources      []SourceReport            `json:"sources"`
	Entries      int                       `json:"entries"`
	ByProvenance map[models.Provenance]int `json:"byProvenance"`
	Replaced     int                       `json:"replaced"`
	Discarded    int                       `json:"discarded"`
	Diagnostics  []ReconcileDiagnostic     `json:"diagnostics,omitempty"`
	Origin       string                    `json:"origin"`
	SnapshotID   int64                     `json:"snapshotId,omitempty"`
}

// CatalogLoader fetches every listing, reconciles them and publishes the result
type CatalogLoader struct {
	sources     []ListingSource
	table       *figuredata.Table
	repo        repository.CatalogRepositoryInterface
	store       *CatalogStore
	timeout     time.Duration
	reconcileBy []ReconcileOption
}

// NewCatalogLoader creates a loader. repo may be nil to skip snapshot persistence.
func NewCatalogLoader(
	sources []ListingSource,
	table *figuredata.Table,
	repo repository.CatalogRepositoryInterface,
	store *CatalogStore,
	timeout time.Duration,
	opts ...ReconcileOption,
) *CatalogLoader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CatalogLoader{
		sources:     sources,
		table:       table,
		repo:        repo,
		store:       store,
		timeout:     timeout,
		reconcileBy: opts,
	}
}

// Reload fetches all sources concurrently, each under its own timeout. A source
// that fails or times out contributes an empty listing. Reconciliation starts
// once every fetch has returned. When no source produced anything, the last
// stored snapshot is served instead, or else the current catalog is kept.
func (l *CatalogLoader) Reload(ctx context.Context) (*LoadReport, error) {
	log.Printf("🔄 Reloading catalog from %d sources", len(l.sources))

	listings := make([]Listing, len(l.sources))
	reports := make([]SourceReport, len(l.sources))

	// Sources never fail the group; a fetch error is kept in its SourceReport
	// and the source contributes an empty listing
	var g errgroup.Group
	for i, source := range l.sources {
		i, source := i, source
		g.Go(func() error {
			listings[i], reports[i] = l.fetchListing(ctx, source)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, listing := range listings {
		total += len(listing.Entries)
	}

	if total == 0 && l.repo != nil {
		report, err := l.restoreSnapshot(ctx)
		if err == nil {
			report.Sources = reports
			return report, nil
		}
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			log.Printf("⚠️  Could not restore catalog snapshot: %v", err)
		}
	}

	if total == 0 {
		if current, err := l.store.Current(); err == nil {
			origin, _ := l.store.Origin()
			log.Printf("⚠️  All sources empty, keeping current catalog")
			return &LoadReport{
				Sources:      reports,
				Entries:      current.Len(),
				ByProvenance: current.CountByProvenance(),
				Origin:       origin,
			}, ErrNoListings
		}
	}

	result := Reconcile(listings, l.table, l.reconcileBy...)
	l.store.Set(result.Catalog, OriginSources)

	report := &LoadReport{
		Sources:      reports,
		Entries:      result.Catalog.Len(),
		ByProvenance: result.Catalog.CountByProvenance(),
		Replaced:     result.Replaced,
		Discarded:    result.Discarded,
		Diagnostics:  result.Diagnostics,
		Origin:       OriginSources,
	}
	log.Printf("✅ Catalog reconciled: %d entries (%d replaced, %d discarded, %d diagnostics)",
		report.Entries, report.Replaced, report.Discarded, len(report.Diagnostics))

	if l.repo != nil && total > 0 {
		snapshotID, err := l.repo.ReplaceSnapshot(ctx, result.Catalog.Entries())
		if err != nil {
			log.Printf("⚠️  Warning: Failed to persist catalog snapshot: %v", err)
		} else {
			report.SnapshotID = snapshotID
		}
	}

	return report, nil
}

func (l *CatalogLoader) fetchListing(ctx context.Context, source ListingSource) (listing Listing, report SourceReport) {
	provenance := source.Normalizer.Provenance()
	listing = Listing{Provenance: provenance}
	report = SourceReport{Provenance: provenance, Location: source.Fetcher.Describe()}

	start := time.Now()
	defer func() {
		report.Duration = time.Since(start).Round(time.Millisecond).String()
	}()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	log.Printf("📡 Fetching %s listing from %s", provenance, report.Location)
	data, err := source.Fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("⚠️  %s listing unavailable: %v", provenance, err)
		report.Error = err.Error()
		return listing, report
	}

	normalized, err := source.Normalizer.Normalize(data)
	if err != nil {
		log.Printf("⚠️  %s listing unreadable: %v", provenance, err)
		report.Error = err.Error()
		return listing, report
	}

	listing.Entries = normalized.Entries
	report.Entries = len(normalized.Entries)
	report.Rejected = normalized.Rejected
	log.Printf("✅ %s listing: %d entries, %d rejected", provenance, report.Entries, report.Rejected)
	return listing, report
}

func (l *CatalogLoader) restoreSnapshot(ctx context.Context) (*LoadReport, error) {
	snapshot, err := l.repo.LoadLatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	catalog := NewReconciledCatalog(snapshot.Entries)
	l.store.Set(catalog, OriginSnapshot)
	log.Printf("⚠️  All sources empty, serving snapshot %d from %s", snapshot.ID, snapshot.CreatedAt.Format(time.RFC3339))

	return &LoadReport{
		Entries:      catalog.Len(),
		ByProvenance: catalog.CountByProvenance(),
		Origin:       OriginSnapshot,
		SnapshotID:   snapshot.ID,
	}, nil
}
