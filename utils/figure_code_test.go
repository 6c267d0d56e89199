package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
)

func threePartFigure() models.Figure {
	return models.Figure{
		models.FamilyHair:  {GarmentID: 828, ColorIDs: []int{45}},
		models.FamilyChest: {GarmentID: 665, ColorIDs: []int{92}},
		models.FamilyLegs:  {GarmentID: 700, ColorIDs: []int{1}},
	}
}

func TestEncodeFigureCanonicalOrder(t *testing.T) {
	assert.Equal(t, "hr-828-45.ch-665-92.lg-700-1", EncodeFigure(threePartFigure()))
}

func TestEncodeFigureFullOrderAndDuotone(t *testing.T) {
	figure := models.Figure{
		models.FamilyChestPrint:     {GarmentID: 3124, ColorIDs: []int{1}},
		models.FamilyCoat:           {GarmentID: 3039, ColorIDs: []int{64, 1408}},
		models.FamilyHead:           {GarmentID: 180, ColorIDs: []int{2}},
		models.FamilyWaistAccessory: {GarmentID: 2001, ColorIDs: []int{62}},
	}
	assert.Equal(t, "hd-180-2.cc-3039-64-1408.wa-2001-62.cp-3124-1", EncodeFigure(figure))
}

func TestEncodeEmptyFigure(t *testing.T) {
	assert.Equal(t, "", EncodeFigure(models.Figure{}))
}

func TestDecodeFigureSkipsUnknownFamily(t *testing.T) {
	result := DecodeFigure("hr-828-45.ch-665-92.lg-700-1.zz-9-9")

	assert.Equal(t, threePartFigure(), result.Figure)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, SkipUnknownFamily, result.Skipped[0].Reason)
	assert.Equal(t, "zz-9-9", result.Skipped[0].Segment)
}

func TestDecodeFigureMalformedSegments(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"too few tokens", "hr-828"},
		{"too many colors", "hr-828-45-46-47"},
		{"non numeric id", "hr-abc-45"},
		{"signed id", "hr-+828-45"},
		{"negative color", "hr-828--45"},
		{"non numeric color", "hr-828-red"},
		{"empty color", "hr-828-"},
		{"overflowing id", "hr-99999999999-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DecodeFigure("hd-180-2." + tt.segment)

			assert.Equal(t, models.Figure{models.FamilyHead: {GarmentID: 180, ColorIDs: []int{2}}}, result.Figure)
			require.Len(t, result.Skipped, 1)
			assert.Equal(t, SkipMalformedSegment, result.Skipped[0].Reason)
			assert.Equal(t, tt.segment, result.Skipped[0].Segment)
		})
	}
}

func TestDecodeFigureIgnoresEmptySegments(t *testing.T) {
	result := DecodeFigure(" .hr-828-45..ch-665-92. ")

	assert.Empty(t, result.Skipped)
	assert.Len(t, result.Figure, 2)
}

func TestDecodeFigureDuplicateFamilyLastWins(t *testing.T) {
	result := DecodeFigure("hr-828-45.hr-830-61")

	assert.Equal(t, models.FigurePart{GarmentID: 830, ColorIDs: []int{61}}, result.Figure[models.FamilyHair])
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, SkipDuplicateFamily, result.Skipped[0].Reason)
}

func TestDecodeFigureNeverFails(t *testing.T) {
	for _, code := range []string{"", ".", "...", "-", "hr", "💥-1-2", strings.Repeat("x", 1000)} {
		result := DecodeFigure(code)
		assert.NotNil(t, result.Figure, code)
	}
}

func TestFigureCodeRoundTrip(t *testing.T) {
	figures := []models.Figure{
		models.DefaultFigure(),
		threePartFigure(),
		{},
		{
			models.FamilyHead:           {GarmentID: 190, ColorIDs: []int{10}},
			models.FamilyHair:           {GarmentID: 3090, ColorIDs: []int{45}},
			models.FamilyChest:          {GarmentID: 3030, ColorIDs: []int{64, 1408}},
			models.FamilyLegs:           {GarmentID: 3023, ColorIDs: []int{110, 62}},
			models.FamilyShoes:          {GarmentID: 290, ColorIDs: []int{62}},
			models.FamilyHat:            {GarmentID: 3129, ColorIDs: []int{1, 92}},
			models.FamilyEyeAccessory:   {GarmentID: 1401, ColorIDs: []int{1}},
			models.FamilyFaceAccessory:  {GarmentID: 1201, ColorIDs: []int{1}},
			models.FamilyChestAccessory: {GarmentID: 1801, ColorIDs: []int{1}},
			models.FamilyWaistAccessory: {GarmentID: 3072, ColorIDs: []int{1, 1}},
			models.FamilyCoat:           {GarmentID: 260, ColorIDs: []int{0}},
			models.FamilyChestPrint:     {GarmentID: 3125, ColorIDs: []int{1}},
		},
	}

	for _, figure := range figures {
		code := EncodeFigure(figure)
		result := DecodeFigure(code)
		assert.Empty(t, result.Skipped, code)
		assert.Equal(t, figure, result.Figure, code)
	}
}

func TestSkippedStrings(t *testing.T) {
	result := DecodeFigure("zz-1-1.hr-1")
	assert.Equal(t, []string{
		"UnknownFamily: zz-1-1",
		"MalformedSegment: hr-1 (expected 3 or 4 tokens, got 2)",
	}, result.SkippedStrings())

	assert.Nil(t, DecodeFigure("hr-828-45").SkippedStrings())
}

func TestAvatarImageURL(t *testing.T) {
	got := AvatarImageURL("https://www.habbo.com.br/", "hr-828-45.ch-665-92", DefaultAvatarImageOptions())
	assert.Equal(t,
		"https://www.habbo.com.br/habbo-imaging/avatarimage?figure=hr-828-45.ch-665-92&direction=2&head_direction=3&size=m&img_format=png&gesture=std&action=std",
		got,
	)
}
