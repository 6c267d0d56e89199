package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"figure-studio/figuredata"
	"figure-studio/models"
)

func loadTestTable(t *testing.T) *figuredata.Table {
	t.Helper()
	table, err := figuredata.Load("")
	require.NoError(t, err)
	return table
}

func entry(family models.Family, id int, prov models.Provenance, colors ...int) models.CatalogEntry {
	return models.CatalogEntry{
		Family:            family,
		GarmentID:         id,
		DisplayName:       string(family),
		Gender:            models.GenderUnisex,
		ClubTier:          models.ClubFree,
		AvailableColorIDs: colors,
		Provenance:        prov,
	}
}

// testCatalog is a small reconciled catalog covering every mandatory family
func testCatalog(t *testing.T) *ReconciledCatalog {
	t.Helper()
	official := []models.CatalogEntry{
		entry(models.FamilyHead, 180, models.ProvenanceOfficial, 1, 2),
		entry(models.FamilyHair, 828, models.ProvenanceOfficial, 45, 61),
		entry(models.FamilyChest, 665, models.ProvenanceOfficial, 92),
		entry(models.FamilyChest, 3030, models.ProvenanceOfficial, 64, 110),
		entry(models.FamilyLegs, 700, models.ProvenanceOfficial, 1),
		entry(models.FamilyShoes, 705, models.ProvenanceOfficial, 1),
		entry(models.FamilyHat, 1001, models.ProvenanceOfficial, 1),
	}
	result := Reconcile([]Listing{{Provenance: models.ProvenanceOfficial, Entries: official}}, loadTestTable(t))
	return result.Catalog
}
