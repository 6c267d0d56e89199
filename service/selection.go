package service

import (
	"log"

	"figure-studio/models"
)

// maxColorSlots is the number of independent color slots a garment can have
const maxColorSlots = 2

// ApplyEntry puts a catalog entry on the figure and returns the new figure.
// The previous first color of that family is kept when the new entry offers
// it; otherwise the entry's first available color is used.
func ApplyEntry(figure models.Figure, entry models.CatalogEntry) models.Figure {
	out := figure.Clone()
	out[entry.Family] = models.FigurePart{
		GarmentID: entry.GarmentID,
		ColorIDs:  []int{defaultColorFrom(figure, entry)},
	}
	return out
}

func defaultColorFrom(figure models.Figure, entry models.CatalogEntry) int {
	if previous, ok := figure[entry.Family]; ok && len(previous.ColorIDs) > 0 {
		if entry.HasColor(previous.ColorIDs[0]) {
			return previous.ColorIDs[0]
		}
	}
	return entry.FirstColor()
}

// ApplyColors replaces the colors of an occupied family. It is a no-op when the
// family is not worn. A first color the entry does not offer (the catalog
// changed between render and click) is clamped to the entry's first color.
// Only the first color is checked; extra colors beyond two are dropped.
func ApplyColors(figure models.Figure, family models.Family, colors []int, entry models.CatalogEntry) models.Figure {
	part, ok := figure[family]
	if !ok || len(colors) == 0 {
		return figure
	}

	if len(colors) > maxColorSlots {
		colors = colors[:maxColorSlots]
	}
	next := append([]int(nil), colors...)
	if !entry.HasColor(next[0]) {
		log.Printf("⚠️  Stale color %d for %s-%d, clamping to %d", next[0], family, part.GarmentID, entry.FirstColor())
		next[0] = entry.FirstColor()
	}

	out := figure.Clone()
	out[family] = models.FigurePart{GarmentID: part.GarmentID, ColorIDs: next}
	return out
}

// RemoveFamily takes off an optional garment; mandatory families are left untouched
func RemoveFamily(figure models.Figure, family models.Family) models.Figure {
	if family.IsMandatory() {
		return figure
	}
	if _, ok := figure[family]; !ok {
		return figure
	}
	out := figure.Clone()
	delete(out, family)
	return out
}
