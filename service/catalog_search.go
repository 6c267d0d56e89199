package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"figure-studio/models"
)

// SearchCatalog filters the catalog. Without a query entries come back in
// canonical order; with a query they are ranked: exact name or id, then word
// prefix, then substring, then words within a small edit distance.
func SearchCatalog(catalog *ReconciledCatalog, filter models.CatalogFilter) []models.CatalogEntry {
	var entries []models.CatalogEntry
	if filter.Family != "" {
		entries = catalog.ByFamily(filter.Family)
	} else {
		entries = catalog.Entries()
	}

	matched := make([]models.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if !matchesGender(entry.Gender, filter.Gender) {
			continue
		}
		if filter.ExcludeClub && entry.ClubTier != models.ClubFree {
			continue
		}
		if filter.Provenance != "" && entry.Provenance != filter.Provenance {
			continue
		}
		matched = append(matched, entry)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" {
		return matched
	}

	type scored struct {
		entry models.CatalogEntry
		score float64
	}
	results := make([]scored, 0, len(matched))
	for _, entry := range matched {
		if score, ok := scoreEntry(entry, query); ok {
			results = append(results, scored{entry: entry, score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]models.CatalogEntry, len(results))
	for i, r := range results {
		out[i] = r.entry
	}
	return out
}

func scoreEntry(entry models.CatalogEntry, query string) (float64, bool) {
	name := strings.ToLower(entry.DisplayName)
	if name == query || strconv.Itoa(entry.GarmentID) == query || entry.Key().String() == query {
		return 1.0, true
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	for _, word := range words {
		if strings.HasPrefix(word, query) && len(query) >= 2 {
			return 0.9, true
		}
	}
	if strings.Contains(name, query) {
		return 0.8, true
	}

	best := -1
	for _, word := range words {
		dist := levenshtein.ComputeDistance(query, word)
		if dist > searchDistanceLimit(len(word)) {
			continue
		}
		if best < 0 || dist < best {
			best = dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return 0.72 - (0.08 * float64(best)), true
}

func searchDistanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
