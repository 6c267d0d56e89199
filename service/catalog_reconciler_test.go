package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
)

func TestReconcileHigherPrecedenceWinsInEitherOrder(t *testing.T) {
	table := loadTestTable(t)
	mirror := Listing{
		Provenance: models.ProvenanceMirrorA,
		Entries:    []models.CatalogEntry{entry(models.FamilyChest, 210, models.ProvenanceMirrorA, 61)},
	}
	official := Listing{
		Provenance: models.ProvenanceOfficial,
		Entries:    []models.CatalogEntry{entry(models.FamilyChest, 210, models.ProvenanceOfficial, 61, 92)},
	}

	for _, listings := range [][]Listing{{mirror, official}, {official, mirror}} {
		result := Reconcile(listings, table)
		require.Equal(t, 1, result.Catalog.Len())

		got, ok := result.Catalog.Get(models.FamilyChest, 210)
		require.True(t, ok)
		assert.Equal(t, []int{61, 92}, got.AvailableColorIDs)
		assert.Equal(t, models.ProvenanceOfficial, got.Provenance)
		assert.Equal(t, 1, result.Replaced+result.Discarded)
	}
}

func TestReconcileThreeSourcePrecedence(t *testing.T) {
	table := loadTestTable(t)
	listings := []Listing{
		{Provenance: models.ProvenanceMirrorB, Entries: []models.CatalogEntry{entry(models.FamilyHead, 180, "", 5)}},
		{Provenance: models.ProvenanceMirrorA, Entries: []models.CatalogEntry{entry(models.FamilyHead, 180, "", 4)}},
		{Provenance: models.ProvenanceOfficial, Entries: []models.CatalogEntry{entry(models.FamilyHead, 180, "", 2)}},
	}

	result := Reconcile(listings, table)
	got, _ := result.Catalog.Get(models.FamilyHead, 180)
	assert.Equal(t, models.ProvenanceOfficial, got.Provenance)
	assert.Equal(t, []int{2}, got.AvailableColorIDs)
	assert.Equal(t, 2, result.Replaced)

	// Mirror A beats mirror B when official is silent
	result = Reconcile(listings[:2], table)
	got, _ = result.Catalog.Get(models.FamilyHead, 180)
	assert.Equal(t, models.ProvenanceMirrorA, got.Provenance)
}

func TestReconcileFirstRecordWinsWithinSource(t *testing.T) {
	result := Reconcile([]Listing{{
		Provenance: models.ProvenanceMirrorB,
		Entries: []models.CatalogEntry{
			entry(models.FamilyHair, 828, "", 45),
			entry(models.FamilyHair, 828, "", 61),
		},
	}}, loadTestTable(t))

	got, _ := result.Catalog.Get(models.FamilyHair, 828)
	assert.Equal(t, []int{45}, got.AvailableColorIDs)
	assert.Equal(t, 1, result.Discarded)
}

func TestReconcileIsIdempotent(t *testing.T) {
	table := loadTestTable(t)
	listing := Listing{Provenance: models.ProvenanceOfficial, Entries: []models.CatalogEntry{
		entry(models.FamilyHair, 828, "", 45),
		entry(models.FamilyChest, 665, "", 92),
	}}

	once := Reconcile([]Listing{listing}, table)
	twice := Reconcile([]Listing{listing, listing}, table)
	assert.Equal(t, once.Catalog.Entries(), twice.Catalog.Entries())
}

func TestReconcileDropsUnknownFamilies(t *testing.T) {
	result := Reconcile([]Listing{{Provenance: models.ProvenanceOfficial, Entries: []models.CatalogEntry{
		entry("zz", 9, "", 9),
		entry(models.FamilyHair, 828, "", 45),
	}}}, loadTestTable(t))

	assert.Equal(t, 1, result.Catalog.Len())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonUnknownFamily, result.Diagnostics[0].Reason)
	assert.Equal(t, models.CatalogKey{Family: "zz", GarmentID: 9}, result.Diagnostics[0].Key)
}

func TestReconcileBackfillsEmptyColors(t *testing.T) {
	result := Reconcile([]Listing{{Provenance: models.ProvenanceMirrorB, Entries: []models.CatalogEntry{
		entry(models.FamilyHair, 830, ""),
	}}}, loadTestTable(t))

	got, _ := result.Catalog.Get(models.FamilyHair, 830)
	require.NotEmpty(t, got.AvailableColorIDs)
	assert.Equal(t, 31, got.AvailableColorIDs[0])
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonColorsBackfilled, result.Diagnostics[0].Reason)
}

func TestReconcileDuotoneFromTable(t *testing.T) {
	result := Reconcile([]Listing{{Provenance: models.ProvenanceOfficial, Entries: []models.CatalogEntry{
		entry(models.FamilyChest, 3030, "", 64, 110),
		entry(models.FamilyChest, 665, "", 92),
		entry(models.FamilyChest, 4242, "", 92),
	}}}, loadTestTable(t))

	duo, _ := result.Catalog.Get(models.FamilyChest, 3030)
	single, _ := result.Catalog.Get(models.FamilyChest, 665)
	unlisted, ok := result.Catalog.Get(models.FamilyChest, 4242)
	assert.True(t, duo.Duotone)
	assert.False(t, single.Duotone)
	assert.True(t, ok)
	assert.False(t, unlisted.Duotone)
}

func TestReconcileColorUnion(t *testing.T) {
	listings := []Listing{
		{Provenance: models.ProvenanceOfficial, Entries: []models.CatalogEntry{entry(models.FamilyChest, 210, "", 92, 61)}},
		{Provenance: models.ProvenanceMirrorA, Entries: []models.CatalogEntry{entry(models.FamilyChest, 210, "", 61, 100, 1)}},
	}

	result := Reconcile(listings, loadTestTable(t), WithColorUnion())
	got, _ := result.Catalog.Get(models.FamilyChest, 210)
	assert.Equal(t, models.ProvenanceOfficial, got.Provenance)
	assert.Equal(t, []int{92, 61, 1, 100}, got.AvailableColorIDs)
}

func TestReconciledCatalogDoesNotAlias(t *testing.T) {
	catalog := testCatalog(t)

	got, _ := catalog.Get(models.FamilyHair, 828)
	got.AvailableColorIDs[0] = 999
	again, _ := catalog.Get(models.FamilyHair, 828)
	assert.Equal(t, 45, again.AvailableColorIDs[0])

	entries := catalog.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, models.FamilyHead, entries[0].Family)
	assert.Equal(t, []int{665, 3030}, []int{
		catalog.ByFamily(models.FamilyChest)[0].GarmentID,
		catalog.ByFamily(models.FamilyChest)[1].GarmentID,
	})
	assert.Equal(t, map[models.Provenance]int{models.ProvenanceOfficial: 7}, catalog.CountByProvenance())
}

func TestNewReconciledCatalogFromSnapshot(t *testing.T) {
	catalog := NewReconciledCatalog([]models.CatalogEntry{
		entry(models.FamilyHair, 828, models.ProvenanceMirrorA, 45),
		entry(models.FamilyHair, 828, models.ProvenanceMirrorB, 61),
	})
	got, ok := catalog.Get(models.FamilyHair, 828)
	require.True(t, ok)
	assert.Equal(t, models.ProvenanceMirrorA, got.Provenance)

	var empty *ReconciledCatalog
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Entries())
}
