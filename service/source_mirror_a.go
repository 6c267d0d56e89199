package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"figure-studio/models"
	"figure-studio/utils"
)

type mirrorAPayload struct {
	Items []mirrorAItem `json:"items"`
}

type mirrorAItem struct {
	ID     flexString  `json:"id"`
	Part   string      `json:"part"`
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Colors flexStrings `json:"colors"`
	Club   flexString  `json:"club"`
	Gender string      `json:"gender"`
}

// MirrorANormalizer reads the habboemotion-style listing, where garment ids
// live inside asset codes such as "hr_828"
type MirrorANormalizer struct{}

// Ensure MirrorANormalizer implements ListingNormalizer
var _ ListingNormalizer = MirrorANormalizer{}

func (MirrorANormalizer) Provenance() models.Provenance {
	return models.ProvenanceMirrorA
}

// Normalize converts {"items": [...]} into catalog entries
func (MirrorANormalizer) Normalize(data []byte) (NormalizeReport, error) {
	var payload mirrorAPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return NormalizeReport{}, fmt.Errorf("failed to decode mirrorA listing: %w", err)
	}

	var report NormalizeReport
	for _, item := range payload.Items {
		family, _ := utils.NormalizeFamily(item.Part)
		code := strings.TrimSpace(item.Code)
		if family == "" || code == "" {
			report.Rejected++
			continue
		}
		garmentID, err := utils.ExtractGarmentID(code)
		if err != nil {
			report.Rejected++
			continue
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = code
		}

		report.Entries = append(report.Entries, models.CatalogEntry{
			Family:            family,
			GarmentID:         garmentID,
			DisplayName:       name,
			Gender:            utils.MapGender(item.Gender),
			ClubTier:          utils.MapClubTier(item.Club.String()),
			AvailableColorIDs: utils.ParseColorIDs(item.Colors),
			Provenance:        models.ProvenanceMirrorA,
			ExternalAssetHint: code,
		})
	}

	return report, nil
}
