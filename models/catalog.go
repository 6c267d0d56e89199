package models

import "fmt"

// Gender of a garment as published by the sources
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "U"
)

// ClubTier tells whether a garment is free or subscriber-only
type ClubTier string

const (
	ClubFree ClubTier = "free"
	ClubOnly ClubTier = "club"
)

// Provenance records which source produced a catalog record
type Provenance string

const (
	ProvenanceOfficial Provenance = "official"
	ProvenanceMirrorA  Provenance = "mirrorA"
	ProvenanceMirrorB  Provenance = "mirrorB"
)

// Rank returns the precedence of a provenance; higher wins during reconciliation
func (p Provenance) Rank() int {
	switch p {
	case ProvenanceOfficial:
		return 3
	case ProvenanceMirrorA:
		return 2
	case ProvenanceMirrorB:
		return 1
	default:
		return 0
	}
}

// Initial is the single-letter badge shown on degraded thumbnails
func (p Provenance) Initial() string {
	switch p {
	case ProvenanceOfficial:
		return "O"
	case ProvenanceMirrorA:
		return "A"
	case ProvenanceMirrorB:
		return "B"
	default:
		return "?"
	}
}

// CatalogKey identifies a garment across sources
type CatalogKey struct {
	Family    Family
	GarmentID int
}

func (k CatalogKey) String() string {
	return fmt.Sprintf("%s-%d", k.Family, k.GarmentID)
}

// CatalogEntry represents a single garment known to the system
type CatalogEntry struct {
	Family            Family     `json:"family"`
	GarmentID         int        `json:"garmentId"`
	DisplayName       string     `json:"displayName"`
	Gender            Gender     `json:"gender"`
	ClubTier          ClubTier   `json:"clubTier"`
	AvailableColorIDs []int      `json:"availableColorIds"`
	Duotone           bool       `json:"duotone"`
	Provenance        Provenance `json:"provenance"`
	ExternalAssetHint string     `json:"externalAssetHint,omitempty"` // Only read by the thumbnail engine
}

// Key returns the (family, garmentId) composite key
func (e CatalogEntry) Key() CatalogKey {
	return CatalogKey{Family: e.Family, GarmentID: e.GarmentID}
}

// HasColor reports whether colorID is one of the entry's available colors
func (e CatalogEntry) HasColor(colorID int) bool {
	for _, c := range e.AvailableColorIDs {
		if c == colorID {
			return true
		}
	}
	return false
}

// FirstColor returns the entry's first available color, or 1 when none is known
func (e CatalogEntry) FirstColor() int {
	if len(e.AvailableColorIDs) == 0 {
		return 1
	}
	return e.AvailableColorIDs[0]
}

// CatalogFilter narrows a catalog listing
type CatalogFilter struct {
	Family      Family
	Gender      Gender     // empty means any; otherwise target or unisex
	ExcludeClub bool
	Provenance  Provenance // empty means any
	Query       string
}
