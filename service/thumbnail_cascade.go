package service

import (
	"fmt"

	"figure-studio/models"
)

// ThumbnailCascade walks a candidate list for one (entry, color) until an image
// loads or the list runs out. It only moves forward: Pending(i) is followed by
// Pending(j > i), Success or Exhausted, and terminal states never change.
//
// A cascade is driven by whoever renders the image: call Start, try the URL of
// every Pending transition, and Report the outcome.
//
// Failures only count for the pass that saw them. A later cascade over the
// same URLs tries them again, so a transient outage does not stick.
type ThumbnailCascade struct {
	key        string
	entry      models.CatalogEntry
	candidates []string
	cache      *ProbeCache
	failed     map[string]bool

	current   models.ThumbnailTransition
	history   []models.ThumbnailTransition
	attempts  int
	abandoned bool
}

// CascadeKey identifies the sticky success slot for an entry and color
func CascadeKey(entry models.CatalogEntry, colorID int) string {
	return fmt.Sprintf("%s|%s-%d|%d", entry.Provenance, entry.Family, entry.GarmentID, colorID)
}

// NewThumbnailCascade creates a cascade over candidates sharing the given cache
func NewThumbnailCascade(entry models.CatalogEntry, colorID int, candidates []string, cache *ProbeCache) *ThumbnailCascade {
	if cache == nil {
		cache = NewProbeCache()
	}
	return &ThumbnailCascade{
		key:        CascadeKey(entry, colorID),
		entry:      entry,
		candidates: candidates,
		cache:      cache,
		failed:     make(map[string]bool),
		current:    models.ThumbnailTransition{State: models.ThumbnailPending, Index: -1},
	}
}

// Start picks the first transition. A remembered success for this key is
// returned immediately without trying anything.
func (c *ThumbnailCascade) Start() models.ThumbnailTransition {
	if c.current.Index >= 0 || c.current.Terminal() {
		return c.current
	}
	if index, ok := c.cache.StickyIndex(c.key); ok && index < len(c.candidates) {
		if outcome, known := c.cache.Outcome(c.candidates[index]); known && outcome == models.ProbeSuccess {
			return c.succeed(index)
		}
	}
	return c.advance(0)
}

// Report records the outcome of loading the current Pending URL and moves on
func (c *ThumbnailCascade) Report(ok bool) models.ThumbnailTransition {
	if c.abandoned || c.current.Terminal() || c.current.Index < 0 {
		return c.current
	}
	url := c.candidates[c.current.Index]
	c.attempts++
	if ok {
		c.cache.Record(url, models.ProbeSuccess)
		return c.succeed(c.current.Index)
	}
	c.failed[url] = true
	c.cache.Record(url, models.ProbeFailure)
	return c.advance(c.current.Index + 1)
}

// Abandon stops the cascade; later reports are ignored and nothing more is cached
func (c *ThumbnailCascade) Abandon() {
	c.abandoned = true
}

// Current returns the latest transition
func (c *ThumbnailCascade) Current() models.ThumbnailTransition {
	return c.current
}

// Attempts is the number of URLs actually loaded
func (c *ThumbnailCascade) Attempts() int {
	return c.attempts
}

// Resolution summarizes the cascade so far
func (c *ThumbnailCascade) Resolution(colorID int) models.ThumbnailResolution {
	return models.ThumbnailResolution{
		Family:      c.entry.Family,
		GarmentID:   c.entry.GarmentID,
		ColorID:     colorID,
		Final:       c.current,
		Attempts:    c.attempts,
		Transitions: append([]models.ThumbnailTransition(nil), c.history...),
		Candidates:  append([]string(nil), c.candidates...),
	}
}

// advance moves to the first index >= from that has not failed in this pass.
// A success recorded by any pass ends the cascade without a new attempt.
func (c *ThumbnailCascade) advance(from int) models.ThumbnailTransition {
	for i := from; i < len(c.candidates); i++ {
		url := c.candidates[i]
		if c.failed[url] {
			continue
		}
		if outcome, known := c.cache.Outcome(url); known && outcome == models.ProbeSuccess {
			return c.succeed(i)
		}
		return c.transition(models.ThumbnailTransition{
			State: models.ThumbnailPending,
			Index: i,
			URL:   url,
		})
	}
	return c.transition(models.ThumbnailTransition{
		State: models.ThumbnailExhausted,
		Index: len(c.candidates),
		Label: fmt.Sprintf("%d·%s", c.entry.GarmentID, c.entry.Provenance.Initial()),
	})
}

func (c *ThumbnailCascade) succeed(index int) models.ThumbnailTransition {
	c.cache.SetStickyIndex(c.key, index)
	return c.transition(models.ThumbnailTransition{
		State: models.ThumbnailSuccess,
		Index: index,
		URL:   c.candidates[index],
	})
}

func (c *ThumbnailCascade) transition(t models.ThumbnailTransition) models.ThumbnailTransition {
	c.current = t
	c.history = append(c.history, t)
	return t
}
