package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"figure-studio/models"
)

func searchFixture() *ReconciledCatalog {
	named := func(family models.Family, id int, name string, gender models.Gender, club models.ClubTier, prov models.Provenance) models.CatalogEntry {
		e := entry(family, id, prov, 1)
		e.DisplayName = name
		e.Gender = gender
		e.ClubTier = club
		return e
	}
	return NewReconciledCatalog([]models.CatalogEntry{
		named(models.FamilyHair, 828, "Spiky Hair", models.GenderMale, models.ClubFree, models.ProvenanceOfficial),
		named(models.FamilyHair, 595, "Long Braids", models.GenderFemale, models.ClubFree, models.ProvenanceMirrorA),
		named(models.FamilyHair, 3090, "Royal Crown Hair", models.GenderUnisex, models.ClubOnly, models.ProvenanceOfficial),
		named(models.FamilyChest, 665, "Basic Tee", models.GenderUnisex, models.ClubFree, models.ProvenanceMirrorB),
		named(models.FamilyChest, 667, "Blouse", models.GenderFemale, models.ClubFree, models.ProvenanceOfficial),
	})
}

func ids(entries []models.CatalogEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.GarmentID
	}
	return out
}

func TestSearchCatalogFilters(t *testing.T) {
	catalog := searchFixture()

	assert.Equal(t, []int{595, 828, 3090, 665, 667}, ids(SearchCatalog(catalog, models.CatalogFilter{})))
	assert.Equal(t, []int{595, 828, 3090}, ids(SearchCatalog(catalog, models.CatalogFilter{Family: models.FamilyHair})))
	assert.Equal(t, []int{828, 3090, 665}, ids(SearchCatalog(catalog, models.CatalogFilter{Gender: models.GenderMale})))
	assert.Equal(t, []int{595, 828}, ids(SearchCatalog(catalog, models.CatalogFilter{Family: models.FamilyHair, ExcludeClub: true})))
	assert.Equal(t, []int{665}, ids(SearchCatalog(catalog, models.CatalogFilter{Provenance: models.ProvenanceMirrorB})))
}

func TestSearchCatalogRanking(t *testing.T) {
	catalog := searchFixture()

	// exact id beats word prefix
	assert.Equal(t, []int{828}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "828"})))
	assert.Equal(t, []int{665}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "ch-665"})))

	// word prefixes
	got := ids(SearchCatalog(catalog, models.CatalogFilter{Query: "bl"}))
	assert.Equal(t, []int{667}, got)

	got = ids(SearchCatalog(catalog, models.CatalogFilter{Query: "hair"}))
	assert.Equal(t, []int{828, 3090}, got)

	assert.Equal(t, []int{595}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "braid"})))

	// typos within the edit distance limit
	assert.Equal(t, []int{595}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "briads"})))
	assert.Equal(t, []int{3090}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "crwn"})))
	assert.Empty(t, SearchCatalog(catalog, models.CatalogFilter{Query: "zzzzzz"}))
}

func TestSearchCatalogPrefixBeforeFuzzy(t *testing.T) {
	catalog := NewReconciledCatalog([]models.CatalogEntry{
		func() models.CatalogEntry { e := entry(models.FamilyHat, 1, "", 1); e.DisplayName = "Cap"; return e }(),
		func() models.CatalogEntry { e := entry(models.FamilyHat, 2, "", 1); e.DisplayName = "Captain Hat"; return e }(),
	})
	assert.Equal(t, []int{1, 2}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "cap"})))
	assert.Equal(t, []int{2, 1}, ids(SearchCatalog(catalog, models.CatalogFilter{Query: "capt"})))
}
