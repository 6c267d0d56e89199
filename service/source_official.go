package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"figure-studio/models"
	"figure-studio/utils"
)

type officialPayload struct {
	FigureParts map[string][]officialPart `json:"figureParts"`
}

type officialPart struct {
	ID     flexString  `json:"id"`
	Name   string      `json:"name"`
	Colors flexStrings `json:"colors"`
	Club   flexString  `json:"club"`
	Gender string      `json:"gender"`
}

// OfficialNormalizer reads the official figure parts listing
type OfficialNormalizer struct{}

// Ensure OfficialNormalizer implements ListingNormalizer
var _ ListingNormalizer = OfficialNormalizer{}

func (OfficialNormalizer) Provenance() models.Provenance {
	return models.ProvenanceOfficial
}

// Normalize converts {"figureParts": {"hr": [...]}} into catalog entries.
// Families are visited in sorted order so duplicate handling is deterministic.
func (OfficialNormalizer) Normalize(data []byte) (NormalizeReport, error) {
	var payload officialPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return NormalizeReport{}, fmt.Errorf("failed to decode official listing: %w", err)
	}

	categories := make([]string, 0, len(payload.FigureParts))
	for category := range payload.FigureParts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var report NormalizeReport
	for _, category := range categories {
		family, _ := utils.NormalizeFamily(category)
		for _, part := range payload.FigureParts[category] {
			garmentID, ok := parseGarmentID(part.ID.String())
			if family == "" || !ok {
				report.Rejected++
				continue
			}

			name := strings.TrimSpace(part.Name)
			if name == "" {
				name = fmt.Sprintf("%s-%d", strings.ToUpper(string(family)), garmentID)
			}

			report.Entries = append(report.Entries, models.CatalogEntry{
				Family:            family,
				GarmentID:         garmentID,
				DisplayName:       name,
				Gender:            utils.MapGender(part.Gender),
				ClubTier:          utils.MapClubTier(part.Club.String()),
				AvailableColorIDs: utils.ParseColorIDs(part.Colors),
				Provenance:        models.ProvenanceOfficial,
			})
		}
	}

	return report, nil
}
