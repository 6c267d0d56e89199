package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
)

func TestCandidatesOfficialOrder(t *testing.T) {
	hosts := DefaultThumbnailHosts("com.br")
	urls := BuildThumbnailCandidates(entry(models.FamilyHair, 828, models.ProvenanceOfficial, 45), 45, hosts)

	require.GreaterOrEqual(t, len(urls), 6)
	assert.Equal(t, "https://images.habbo.com/c_images/clothing/icon_hr_828_45.png", urls[0])
	assert.Equal(t, "https://images.habbo.com/c_images/clothing/icon_hr_828_1.png", urls[1])
	assert.Equal(t, "https://www.habbo.com.br/habbo-imaging/clothing/hr/828/45.png", urls[2])
	assert.Equal(t, "https://www.habbo.com.br/habbo-imaging/clothing/hr/828/1.png", urls[3])
	assert.Equal(t, "https://www.habbo.com/habbo-imaging/clothing/hr/828/45.png", urls[4])

	assert.Contains(t, urls[len(urls)-2], "/habbo-imaging/avatarimage?figure=hr-828-45&")
	assert.Equal(t, "https://via.placeholder.com/64x64/f0f0f0/666?text=HR", urls[len(urls)-1])
}

func TestCandidatesSkipConfiguredRegionInAlternates(t *testing.T) {
	urls := BuildThumbnailCandidates(entry(models.FamilyHair, 828, models.ProvenanceOfficial, 45), 45, DefaultThumbnailHosts("com.br"))

	count := 0
	for _, u := range urls {
		if u == "https://www.habbo.com.br/habbo-imaging/clothing/hr/828/45.png" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCandidatesColorOneIsDeduplicated(t *testing.T) {
	urls := BuildThumbnailCandidates(entry(models.FamilyLegs, 700, models.ProvenanceOfficial, 1), 1, DefaultThumbnailHosts("com"))

	seen := map[string]bool{}
	for _, u := range urls {
		assert.False(t, seen[u], "duplicate candidate %s", u)
		seen[u] = true
	}
	assert.Equal(t, "https://www.habbo.com/habbo-imaging/clothing/lg/700/1.png", urls[1])
}

func TestCandidatesMirrorA(t *testing.T) {
	e := entry(models.FamilyChest, 665, models.ProvenanceMirrorA, 92)
	e.ExternalAssetHint = "shirt_f_665"

	urls := BuildThumbnailCandidates(e, 92, DefaultThumbnailHosts("com.br"))
	assert.Equal(t, []string{
		"https://habboemotion.com/images/clothing/ch/shirt_f_665.png",
		"https://habboemotion.com/assets/clothing/shirt_f_665.png",
		"https://cdn.habboemotion.com/clothing/shirt_f_665.gif",
		"https://habboemotion.com/images/shirt_f_665.png",
		"https://www.habbo.com.br/habbo-imaging/clothing/ch/665/92.png",
		"https://www.habbo.com.br/habbo-imaging/clothing/ch/665/1.png",
		"https://images.habbo.com/c_images/clothing/icon_ch_665_92.png",
		"https://images.habbo.com/c_images/clothing/icon_ch_665_1.png",
		"https://www.habbo.com/habbo-imaging/clothing/ch/665/92.png",
	}, urls[:9])
}

func TestCandidatesMirrorBUsesPublishedURLFirst(t *testing.T) {
	e := entry(models.FamilyHat, 1002, models.ProvenanceMirrorB, 1)
	e.ExternalAssetHint = "https://www.habbowidgets.com/images/hat_U_crown.gif"

	urls := BuildThumbnailCandidates(e, 0, DefaultThumbnailHosts("com.br"))
	assert.Equal(t, e.ExternalAssetHint, urls[0])
	assert.Equal(t, "https://www.habbowidgets.com/images/ha_1002.gif", urls[1])
	assert.Equal(t, "https://www.habbowidgets.com/images/ha1002.gif", urls[2])
	assert.Equal(t, "https://habbowidgets.com/images/ha_1002.gif", urls[3])
	assert.Equal(t, "https://www.habbo.com.br/habbo-imaging/clothing/ha/1002/1.png", urls[4])
	assert.Equal(t, "https://images.habbo.com/c_images/clothing/icon_ha_1002_1.png", urls[5])
	assert.Len(t, urls, 12)

	// Color 0 falls back to the first available color
	assert.Contains(t, strings.Join(urls, " "), "/clothing/ha/1002/1.png")
}
