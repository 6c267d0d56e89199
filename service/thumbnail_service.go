package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"figure-studio/models"
	"figure-studio/workerpool"
)

// ErrThumbnailExhausted is returned when no candidate of an entry loads
var ErrThumbnailExhausted = errors.New("no thumbnail candidate loaded")

// ImageFetcher downloads the bytes of a resolved thumbnail
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// WarmupReport summarizes a warmup run
type WarmupReport struct {
	Total     int `json:"total"`
	Resolved  int `json:"resolved"`
	Exhausted int `json:"exhausted"`
	Failed    int `json:"failed"`
	Successes int `json:"cachedSuccesses"`
	Failures  int `json:"cachedFailures"`
}

// ThumbnailService resolves thumbnails and serves normalized image bytes
type ThumbnailService struct {
	engine  *ThumbnailEngine
	fetcher ImageFetcher
	disk    *ThumbnailDiskCache
	workers int
}

// Ensure ThumbnailService implements ThumbnailServiceInterface
var _ ThumbnailServiceInterface = (*ThumbnailService)(nil)

// NewThumbnailService creates a new ThumbnailService. disk may be nil.
func NewThumbnailService(engine *ThumbnailEngine, fetcher ImageFetcher, disk *ThumbnailDiskCache, workers int) *ThumbnailService {
	if workers <= 0 {
		workers = 4
	}
	return &ThumbnailService{engine: engine, fetcher: fetcher, disk: disk, workers: workers}
}

// Candidates returns the ordered candidate URLs
func (s *ThumbnailService) Candidates(entry models.CatalogEntry, colorID int) []string {
	return s.engine.Candidates(entry, colorID)
}

// Resolve runs the cascade for one entry, passing every transition to emit
func (s *ThumbnailService) Resolve(ctx context.Context, entry models.CatalogEntry, colorID int, emit func(models.ThumbnailTransition)) (models.ThumbnailResolution, error) {
	return s.engine.Resolve(ctx, entry, colorID, emit)
}

// Image resolves the cascade and returns the winning image as a normalized PNG
func (s *ThumbnailService) Image(ctx context.Context, entry models.CatalogEntry, colorID int, size string) ([]byte, error) {
	resolution, err := s.engine.Resolve(ctx, entry, colorID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve thumbnail: %w", err)
	}
	if resolution.Final.State != models.ThumbnailSuccess {
		return nil, ErrThumbnailExhausted
	}
	url := resolution.Final.URL

	if s.disk != nil {
		if data, ok := s.disk.Read(url, size); ok {
			return data, nil
		}
	}

	raw, _, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to download thumbnail: %w", err)
	}
	optimized, err := OptimizeThumbnail(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize thumbnail: %w", err)
	}

	if s.disk != nil {
		if err := s.disk.Save(url, size, optimized); err != nil {
			log.Printf("⚠️  Warning: Failed to cache thumbnail: %v", err)
		}
	}
	return optimized, nil
}

// Warmup resolves thumbnails for many entries on a bounded worker pool.
// Cascades run concurrently across entries; each is sequential inside.
func (s *ThumbnailService) Warmup(ctx context.Context, entries []models.CatalogEntry) (*WarmupReport, error) {
	log.Printf("🔄 Warming up %d thumbnails with %d workers", len(entries), s.workers)

	var resolved, exhausted, failed int32
	pool := workerpool.New(s.workers, s.workers*2, func(err error) {
		atomic.AddInt32(&failed, 1)
		log.Printf("⚠️  Warmup cascade abandoned: %v", err)
	})
	pool.Start(ctx)

	var submitErr error
	for _, entry := range entries {
		entry := entry
		err := pool.Submit(ctx, func(ctx context.Context) error {
			resolution, err := s.engine.Resolve(ctx, entry, entry.FirstColor(), nil)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Key(), err)
			}
			if resolution.Final.State == models.ThumbnailSuccess {
				atomic.AddInt32(&resolved, 1)
			} else {
				atomic.AddInt32(&exhausted, 1)
			}
			return nil
		})
		if err != nil {
			submitErr = err
			break
		}
	}
	pool.Close()

	successes, failures := s.engine.Cache().Stats()
	report := &WarmupReport{
		Total:     len(entries),
		Resolved:  int(atomic.LoadInt32(&resolved)),
		Exhausted: int(atomic.LoadInt32(&exhausted)),
		Failed:    int(atomic.LoadInt32(&failed)),
		Successes: successes,
		Failures:  failures,
	}
	if submitErr != nil {
		return report, fmt.Errorf("warmup interrupted: %w", submitErr)
	}
	log.Printf("✅ Warmup done: %d resolved, %d exhausted, %d failed", report.Resolved, report.Exhausted, report.Failed)
	return report, nil
}
