package service

import (
	"sort"

	"figure-studio/models"
)

// ReconciledCatalog is an immutable (family, garmentId) -> entry mapping.
// Accessors return copies; nothing handed out aliases the catalog's storage.
type ReconciledCatalog struct {
	entries  map[models.CatalogKey]models.CatalogEntry
	byFamily map[models.Family][]models.CatalogKey
}

func newReconciledCatalog(entries map[models.CatalogKey]models.CatalogEntry) *ReconciledCatalog {
	byFamily := make(map[models.Family][]models.CatalogKey)
	for key := range entries {
		byFamily[key.Family] = append(byFamily[key.Family], key)
	}
	for family := range byFamily {
		keys := byFamily[family]
		sort.Slice(keys, func(i, j int) bool { return keys[i].GarmentID < keys[j].GarmentID })
	}
	return &ReconciledCatalog{entries: entries, byFamily: byFamily}
}

// NewReconciledCatalog builds a catalog directly from entries, e.g. a stored snapshot.
// The first entry per key wins.
func NewReconciledCatalog(list []models.CatalogEntry) *ReconciledCatalog {
	entries := make(map[models.CatalogKey]models.CatalogEntry, len(list))
	for _, entry := range list {
		if _, exists := entries[entry.Key()]; exists {
			continue
		}
		entries[entry.Key()] = cloneEntry(entry)
	}
	return newReconciledCatalog(entries)
}

// Len returns the number of entries
func (c *ReconciledCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Get returns the entry for a family and garment id
func (c *ReconciledCatalog) Get(family models.Family, garmentID int) (models.CatalogEntry, bool) {
	if c == nil {
		return models.CatalogEntry{}, false
	}
	entry, ok := c.entries[models.CatalogKey{Family: family, GarmentID: garmentID}]
	if !ok {
		return models.CatalogEntry{}, false
	}
	return cloneEntry(entry), true
}

// ByFamily returns a family's entries ordered by garment id
func (c *ReconciledCatalog) ByFamily(family models.Family) []models.CatalogEntry {
	if c == nil {
		return nil
	}
	keys := c.byFamily[family]
	out := make([]models.CatalogEntry, 0, len(keys))
	for _, key := range keys {
		out = append(out, cloneEntry(c.entries[key]))
	}
	return out
}

// Entries returns every entry in canonical family order, then garment id
func (c *ReconciledCatalog) Entries() []models.CatalogEntry {
	if c == nil {
		return nil
	}
	out := make([]models.CatalogEntry, 0, len(c.entries))
	for _, family := range models.CanonicalFamilyOrder {
		out = append(out, c.ByFamily(family)...)
	}
	return out
}

// CountByProvenance reports how many entries each source won
func (c *ReconciledCatalog) CountByProvenance() map[models.Provenance]int {
	counts := make(map[models.Provenance]int)
	if c == nil {
		return counts
	}
	for _, entry := range c.entries {
		counts[entry.Provenance]++
	}
	return counts
}
