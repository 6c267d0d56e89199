package service

import (
	"sort"

	"figure-studio/figuredata"
	"figure-studio/models"
)

// Listing is one source's normalized records, tagged with their provenance
type Listing struct {
	Provenance models.Provenance
	Entries    []models.CatalogEntry
}

// ReconcileDiagnostic reports a record the reconciler dropped or patched
type ReconcileDiagnostic struct {
	Key        models.CatalogKey `json:"key"`
	Provenance models.Provenance `json:"provenance"`
	Reason     string            `json:"reason"`
}

// Diagnostic reasons
const (
	ReasonUnknownFamily    = "UnknownFamily"
	ReasonColorsBackfilled = "ColorsBackfilled"
)

// ReconcileResult is the reconciled catalog plus what happened on the way
type ReconcileResult struct {
	Catalog     *ReconciledCatalog
	Diagnostics []ReconcileDiagnostic
	Replaced    int // records superseded by a higher-precedence source
	Discarded   int // records losing to an equal or higher-precedence record
}

type reconcileOptions struct {
	unionColors bool
}

// ReconcileOption tweaks reconciliation
type ReconcileOption func(*reconcileOptions)

// WithColorUnion keeps the winner's record but appends colors only the losing
// sources publish, instead of discarding them
func WithColorUnion() ReconcileOption {
	return func(o *reconcileOptions) {
		o.unionColors = true
	}
}

// Reconcile merges listings into one catalog. For each (family, garmentId)
// the highest-precedence source wins (official > mirrorA > mirrorB); within a
// source the first record wins. The result does not depend on listing order
// across sources.
func Reconcile(listings []Listing, table *figuredata.Table, opts ...ReconcileOption) ReconcileResult {
	var options reconcileOptions
	for _, opt := range opts {
		opt(&options)
	}

	var result ReconcileResult
	chosen := make(map[models.CatalogKey]models.CatalogEntry)
	extraColors := make(map[models.CatalogKey]map[int]bool)

	for _, listing := range listings {
		for _, record := range listing.Entries {
			// The listing tag is authoritative over whatever the record carries
			record.Provenance = listing.Provenance
			key := record.Key()

			if options.unionColors {
				if extraColors[key] == nil {
					extraColors[key] = make(map[int]bool)
				}
				for _, c := range record.AvailableColorIDs {
					extraColors[key][c] = true
				}
			}

			existing, seen := chosen[key]
			if !seen {
				chosen[key] = cloneEntry(record)
				continue
			}
			if record.Provenance.Rank() > existing.Provenance.Rank() {
				chosen[key] = cloneEntry(record)
				result.Replaced++
				continue
			}
			result.Discarded++
		}
	}

	entries := make(map[models.CatalogKey]models.CatalogEntry, len(chosen))
	for key, entry := range chosen {
		if table == nil || !table.KnowsFamily(entry.Family) {
			result.Diagnostics = append(result.Diagnostics, ReconcileDiagnostic{
				Key:        key,
				Provenance: entry.Provenance,
				Reason:     ReasonUnknownFamily,
			})
			continue
		}

		if options.unionColors {
			entry.AvailableColorIDs = unionColors(entry.AvailableColorIDs, extraColors[key])
		}

		if len(entry.AvailableColorIDs) == 0 {
			if color, ok := table.DefaultColor(entry.Family); ok {
				entry.AvailableColorIDs = []int{color}
			} else {
				entry.AvailableColorIDs = []int{1}
			}
			result.Diagnostics = append(result.Diagnostics, ReconcileDiagnostic{
				Key:        key,
				Provenance: entry.Provenance,
				Reason:     ReasonColorsBackfilled,
			})
		}

		if garment, ok := table.Garment(entry.Family, entry.GarmentID); ok {
			entry.Duotone = garment.ColorSlots == 2
		}

		entries[key] = entry
	}

	sortDiagnostics(result.Diagnostics)
	result.Catalog = newReconciledCatalog(entries)
	return result
}

// unionColors keeps the winner's order and appends the other sources' colors ascending
func unionColors(winner []int, all map[int]bool) []int {
	out := append([]int(nil), winner...)
	present := make(map[int]bool, len(winner))
	for _, c := range winner {
		present[c] = true
	}
	var extra []int
	for c := range all {
		if !present[c] {
			extra = append(extra, c)
		}
	}
	sort.Ints(extra)
	return append(out, extra...)
}

func cloneEntry(entry models.CatalogEntry) models.CatalogEntry {
	entry.AvailableColorIDs = append([]int(nil), entry.AvailableColorIDs...)
	return entry
}

func sortDiagnostics(diagnostics []ReconcileDiagnostic) {
	sort.Slice(diagnostics, func(i, j int) bool {
		a, b := diagnostics[i], diagnostics[j]
		if a.Key.Family != b.Key.Family {
			return a.Key.Family < b.Key.Family
		}
		if a.Key.GarmentID != b.Key.GarmentID {
			return a.Key.GarmentID < b.Key.GarmentID
		}
		return a.Reason < b.Reason
	})
}
