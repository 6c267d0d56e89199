package service

import (
	"context"
	"log"

	"figure-studio/models"
)

// ImageLoader attempts to load one image URL. A nil error means the image
// rendered; any error counts as a failed candidate.
type ImageLoader interface {
	Load(ctx context.Context, url string) error
}

// ThumbnailEngine resolves catalog thumbnails through the candidate cascade
// using a shared probe cache
type ThumbnailEngine struct {
	cache  *ProbeCache
	hosts  ThumbnailHosts
	loader ImageLoader
}

// NewThumbnailEngine creates an engine. A nil cache gets a fresh one.
func NewThumbnailEngine(cache *ProbeCache, hosts ThumbnailHosts, loader ImageLoader) *ThumbnailEngine {
	if cache == nil {
		cache = NewProbeCache()
	}
	return &ThumbnailEngine{cache: cache, hosts: hosts, loader: loader}
}

// Cache exposes the probe cache shared by every cascade of this engine
func (e *ThumbnailEngine) Cache() *ProbeCache {
	return e.cache
}

// Candidates returns the ordered candidate list for an entry and color
func (e *ThumbnailEngine) Candidates(entry models.CatalogEntry, colorID int) []string {
	return BuildThumbnailCandidates(entry, normalizeColor(entry, colorID), e.hosts)
}

// NewCascade returns a cascade for an external renderer to drive
func (e *ThumbnailEngine) NewCascade(entry models.CatalogEntry, colorID int) *ThumbnailCascade {
	colorID = normalizeColor(entry, colorID)
	return NewThumbnailCascade(entry, colorID, BuildThumbnailCandidates(entry, colorID, e.hosts), e.cache)
}

// Resolve drives a cascade to completion with the engine's loader. Every
// transition is passed to emit (which may be nil). When ctx is cancelled the
// cascade is abandoned, the in-flight outcome is not cached and ctx.Err() is
// returned with the partial resolution.
func (e *ThumbnailEngine) Resolve(ctx context.Context, entry models.CatalogEntry, colorID int, emit func(models.ThumbnailTransition)) (models.ThumbnailResolution, error) {
	colorID = normalizeColor(entry, colorID)
	cascade := e.NewCascade(entry, colorID)

	t := cascade.Start()
	if emit != nil {
		emit(t)
	}

	for !t.Terminal() {
		if err := ctx.Err(); err != nil {
			cascade.Abandon()
			return cascade.Resolution(colorID), err
		}

		loadErr := e.loader.Load(ctx, t.URL)
		if err := ctx.Err(); err != nil {
			cascade.Abandon()
			return cascade.Resolution(colorID), err
		}

		t = cascade.Report(loadErr == nil)
		if emit != nil {
			emit(t)
		}
	}

	if t.State == models.ThumbnailExhausted {
		log.Printf("⚠️  No thumbnail for %s after %d attempts, showing %s", entry.Key(), cascade.Attempts(), t.Label)
	}
	return cascade.Resolution(colorID), nil
}

func normalizeColor(entry models.CatalogEntry, colorID int) int {
	if colorID <= 0 {
		return entry.FirstColor()
	}
	return colorID
}
