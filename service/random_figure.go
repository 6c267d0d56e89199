package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"figure-studio/models"
)

// RandomOptions constrains the random figure generator
type RandomOptions struct {
	Gender      models.Gender // empty means any
	ExcludeClub bool
}

// RandomFigureResult is an advisory figure: mandatory families with no
// candidates are left unoccupied and listed in Missing
type RandomFigureResult struct {
	Figure  models.Figure
	Missing []models.Family
}

// RandomFigureGenerator samples complete figures from a reconciled catalog
type RandomFigureGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewRandomFigureGenerator creates a generator with a fixed seed
func NewRandomFigureGenerator(seed uint64) *RandomFigureGenerator {
	return &RandomFigureGenerator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds a figure. Mandatory families are always sampled; optional
// families are occupied on a fair coin flip. Every choice is uniform over the
// entries matching (family, gender in {target, unisex}) and, when requested,
// free club tier. Colors are uniform over the entry's available colors, with
// an independent second draw for duotone garments.
func (g *RandomFigureGenerator) Generate(catalog *ReconciledCatalog, opts RandomOptions) RandomFigureResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := RandomFigureResult{Figure: models.Figure{}}

	for _, family := range models.CanonicalFamilyOrder {
		if !family.IsMandatory() && g.rng.IntN(2) == 0 {
			continue
		}

		candidates := filterCandidates(catalog.ByFamily(family), opts)
		if len(candidates) == 0 {
			if family.IsMandatory() {
				result.Missing = append(result.Missing, family)
			}
			continue
		}

		entry := candidates[g.rng.IntN(len(candidates))]
		colors := []int{g.pickColor(entry)}
		if entry.Duotone {
			colors = append(colors, g.pickColor(entry))
		}
		result.Figure[family] = models.FigurePart{GarmentID: entry.GarmentID, ColorIDs: colors}
	}

	return result
}

func (g *RandomFigureGenerator) pickColor(entry models.CatalogEntry) int {
	if len(entry.AvailableColorIDs) == 0 {
		return 1
	}
	return entry.AvailableColorIDs[g.rng.IntN(len(entry.AvailableColorIDs))]
}

func filterCandidates(entries []models.CatalogEntry, opts RandomOptions) []models.CatalogEntry {
	candidates := entries[:0]
	for _, entry := range entries {
		if !matchesGender(entry.Gender, opts.Gender) {
			continue
		}
		if opts.ExcludeClub && entry.ClubTier != models.ClubFree {
			continue
		}
		candidates = append(candidates, entry)
	}
	return candidates
}

// matchesGender treats unisex garments as wearable by everyone
func matchesGender(garment, target models.Gender) bool {
	if target == "" {
		return true
	}
	return garment == target || garment == models.GenderUnisex
}
