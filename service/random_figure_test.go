package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
	"figure-studio/utils"
)

func TestRandomFigureIsCatalogConsistent(t *testing.T) {
	catalog := testCatalog(t)
	generator := NewRandomFigureGenerator(42)

	for i := 0; i < 200; i++ {
		result := generator.Generate(catalog, RandomOptions{})
		assert.Empty(t, result.Missing)

		for family, part := range result.Figure {
			e, ok := catalog.Get(family, part.GarmentID)
			require.True(t, ok, "%s-%d not in catalog", family, part.GarmentID)
			for _, c := range part.ColorIDs {
				assert.True(t, e.HasColor(c))
			}
			if e.Duotone {
				assert.Len(t, part.ColorIDs, 2)
			} else {
				assert.Len(t, part.ColorIDs, 1)
			}
		}
		for _, family := range models.MandatoryFamilies {
			assert.Contains(t, result.Figure, family)
		}

		decoded := utils.DecodeFigure(utils.EncodeFigure(result.Figure))
		assert.Empty(t, decoded.Skipped)
		assert.Equal(t, result.Figure, decoded.Figure)
	}
}

func TestRandomFigureSameSeedSameFigure(t *testing.T) {
	catalog := testCatalog(t)
	a := NewRandomFigureGenerator(7).Generate(catalog, RandomOptions{})
	b := NewRandomFigureGenerator(7).Generate(catalog, RandomOptions{})
	assert.Equal(t, a, b)
}

func TestRandomFigureRespectsGenderAndClub(t *testing.T) {
	male := entry(models.FamilyHair, 828, models.ProvenanceOfficial, 45)
	male.Gender = models.GenderMale
	female := entry(models.FamilyHair, 595, models.ProvenanceOfficial, 45)
	female.Gender = models.GenderFemale
	club := entry(models.FamilyChest, 3030, models.ProvenanceOfficial, 64)
	club.ClubTier = models.ClubOnly
	free := entry(models.FamilyChest, 665, models.ProvenanceOfficial, 92)

	catalog := NewReconciledCatalog([]models.CatalogEntry{male, female, club, free})
	generator := NewRandomFigureGenerator(1)

	for i := 0; i < 100; i++ {
		result := generator.Generate(catalog, RandomOptions{Gender: models.GenderFemale, ExcludeClub: true})
		assert.Equal(t, 595, result.Figure[models.FamilyHair].GarmentID)
		assert.Equal(t, 665, result.Figure[models.FamilyChest].GarmentID)
		assert.Equal(t, []models.Family{models.FamilyHead, models.FamilyLegs, models.FamilyShoes}, result.Missing)
		assert.NotContains(t, result.Figure, models.FamilyHead)
	}
}

func TestRandomFigureOptionalFamiliesAreSometimesWorn(t *testing.T) {
	catalog := testCatalog(t)
	generator := NewRandomFigureGenerator(99)

	worn, bare := 0, 0
	for i := 0; i < 200; i++ {
		if _, ok := generator.Generate(catalog, RandomOptions{}).Figure[models.FamilyHat]; ok {
			worn++
		} else {
			bare++
		}
	}
	assert.Positive(t, worn)
	assert.Positive(t, bare)
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
