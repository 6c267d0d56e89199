package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"figure-studio/models"
	"figure-studio/utils"
)

type mirrorBItem struct {
	ID       flexString  `json:"id"`
	Category string      `json:"category"`
	FigureID flexString  `json:"figureId"`
	SwfName  string      `json:"swfName"`
	Name     string      `json:"name"`
	Colors   flexStrings `json:"colors"`
	ImageURL string      `json:"imageUrl"`
	Club     flexString  `json:"club"`
	Gender   string      `json:"gender"`
}

// MirrorBNormalizer reads the habbowidgets-style flat array listing
type MirrorBNormalizer struct{}

// Ensure MirrorBNormalizer implements ListingNormalizer
var _ ListingNormalizer = MirrorBNormalizer{}

func (MirrorBNormalizer) Provenance() models.Provenance {
	return models.ProvenanceMirrorB
}

// Normalize converts a top-level array into catalog entries. The garment id
// comes from figureId, or from swfName when figureId is absent.
func (MirrorBNormalizer) Normalize(data []byte) (NormalizeReport, error) {
	var items []mirrorBItem
	if err := json.Unmarshal(data, &items); err != nil {
		return NormalizeReport{}, fmt.Errorf("failed to decode mirrorB listing: %w", err)
	}

	var report NormalizeReport
	for _, item := range items {
		family, _ := utils.NormalizeFamily(item.Category)
		if family == "" {
			report.Rejected++
			continue
		}

		garmentID, ok := parseGarmentID(item.FigureID.String())
		if !ok && strings.TrimSpace(item.SwfName) != "" {
			id, err := utils.ExtractGarmentID(item.SwfName)
			garmentID, ok = id, err == nil
		}
		if !ok {
			report.Rejected++
			continue
		}

		// The published image URL is the best hint; otherwise the swf name
		hint := strings.TrimSpace(item.ImageURL)
		if hint == "" {
			hint = strings.TrimSpace(item.SwfName)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = fmt.Sprintf("%s %d", utils.MapFamilyToName(family), garmentID)
		}

		report.Entries = append(report.Entries, models.CatalogEntry{
			Family:            family,
			GarmentID:         garmentID,
			DisplayName:       name,
			Gender:            utils.MapGender(item.Gender),
			ClubTier:          utils.MapClubTier(item.Club.String()),
			AvailableColorIDs: utils.ParseColorIDs(item.Colors),
			Provenance:        models.ProvenanceMirrorB,
			ExternalAssetHint: hint,
		})
	}

	return report, nil
}
