package service

import (
	"sync"

	"figure-studio/models"
)

// ProbeCache memoizes thumbnail load outcomes per URL and the winning
// candidate index per (entry, color). One instance lives for the whole
// process; it is never persisted and never evicted.
type ProbeCache struct {
	mu       sync.RWMutex
	outcomes map[string]models.ProbeOutcome
	sticky   map[string]int
}

// NewProbeCache creates an empty cache
func NewProbeCache() *ProbeCache {
	return &ProbeCache{
		outcomes: make(map[string]models.ProbeOutcome),
		sticky:   make(map[string]int),
	}
}

// Outcome returns the recorded outcome for a URL
func (c *ProbeCache) Outcome(url string) (models.ProbeOutcome, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	outcome, ok := c.outcomes[url]
	return outcome, ok
}

// Record stores the outcome of loading a URL
func (c *ProbeCache) Record(url string, outcome models.ProbeOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes[url] = outcome
}

// StickyIndex returns the candidate index that last succeeded for a cascade key
func (c *ProbeCache) StickyIndex(key string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	index, ok := c.sticky[key]
	return index, ok
}

// SetStickyIndex remembers the winning candidate index for a cascade key
func (c *ProbeCache) SetStickyIndex(key string, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sticky[key] = index
}

// Stats counts recorded successes and failures
func (c *ProbeCache) Stats() (successes, failures int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, outcome := range c.outcomes {
		if outcome == models.ProbeSuccess {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures
}
