package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
)

func newTestFigureService(t *testing.T, loaded bool) *FigureService {
	t.Helper()
	store := NewCatalogStore()
	if loaded {
		store.Set(testCatalog(t), OriginSources)
	}
	return NewFigureService(store, NewRandomFigureGenerator(3), "com.br")
}

func TestFigureServiceDefaultAndDecode(t *testing.T) {
	svc := newTestFigureService(t, false)

	def := svc.Default()
	assert.Equal(t, "hd-180-2.hr-828-45.ch-665-92.lg-700-1.sh-705-1", def.Code)
	assert.Contains(t, def.AvatarURL, "https://www.habbo.com.br/habbo-imaging/avatarimage?figure="+def.Code)

	decoded := svc.Decode("hr-828-45.zz-1-1")
	assert.Equal(t, "hr-828-45", decoded.Code)
	assert.Equal(t, []string{"UnknownFamily: zz-1-1"}, decoded.Skipped)
}

func TestFigureServiceRandomNeedsCatalog(t *testing.T) {
	_, err := newTestFigureService(t, false).Random(RandomOptions{})
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
}

func TestFigureServiceRandomFillsMissingFamilies(t *testing.T) {
	store := NewCatalogStore()
	store.Set(NewReconciledCatalog([]models.CatalogEntry{
		entry(models.FamilyHair, 3090, models.ProvenanceOfficial, 61),
	}), OriginSources)
	svc := NewFigureService(store, NewRandomFigureGenerator(5), "com")

	resp, err := svc.Random(RandomOptions{})
	require.NoError(t, err)
	assert.Equal(t, []models.Family{models.FamilyHead, models.FamilyChest, models.FamilyLegs, models.FamilyShoes}, resp.Missing)
	assert.Equal(t, 3090, resp.Figure[models.FamilyHair].GarmentID)
	assert.Equal(t, 180, resp.Figure[models.FamilyHead].GarmentID)
	assert.Empty(t, resp.Figure.MissingMandatory())
}

func TestFigureServiceSelectGarment(t *testing.T) {
	svc := newTestFigureService(t, true)

	resp, err := svc.SelectGarment(models.SelectGarmentRequest{Code: "hd-180-2.ch-665-92", Family: "shirt", GarmentID: 3030})
	require.NoError(t, err)
	assert.Equal(t, "hd-180-2.ch-3030-64", resp.Code)

	_, err = svc.SelectGarment(models.SelectGarmentRequest{Family: "zz", GarmentID: 1})
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = svc.SelectGarment(models.SelectGarmentRequest{Family: "hr", GarmentID: 1})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestFigureServiceSetColors(t *testing.T) {
	svc := newTestFigureService(t, true)

	resp, err := svc.SetColors(models.SelectColorsRequest{Code: "hr-828-45", Family: "hr", Colors: []int{61}})
	require.NoError(t, err)
	assert.Equal(t, "hr-828-61", resp.Code)

	// Not worn: unchanged
	resp, err = svc.SetColors(models.SelectColorsRequest{Code: "hr-828-45", Family: "ha", Colors: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, "hr-828-45", resp.Code)

	// Worn garment missing from the catalog
	_, err = svc.SetColors(models.SelectColorsRequest{Code: "hr-1-45", Family: "hr", Colors: []int{61}})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestFigureServiceRemoveFamily(t *testing.T) {
	svc := newTestFigureService(t, false)

	resp, err := svc.RemoveFamily(models.RemoveFamilyRequest{Code: "hr-828-45.ha-1001-1", Family: "hat"})
	require.NoError(t, err)
	assert.Equal(t, "hr-828-45", resp.Code)

	resp, err = svc.RemoveFamily(models.RemoveFamilyRequest{Code: "hr-828-45", Family: "hr"})
	require.NoError(t, err)
	assert.Equal(t, "hr-828-45", resp.Code)
}
