package service

import (
	"fmt"
	"strings"

	"figure-studio/models"
	"figure-studio/utils"
)

// ThumbnailHosts are the asset hosts the candidate list is built against
type ThumbnailHosts struct {
	Region           string // configured official region, e.g. "com.br"
	AlternateRegions []string
	MirrorA          string
	MirrorACDN       string
	MirrorB          string
	MirrorBBare      string
	OfficialImages   string
	Placeholder      string
	AvatarSize       string
}

// DefaultThumbnailHosts returns the production hosts for a region
func DefaultThumbnailHosts(region string) ThumbnailHosts {
	if region == "" {
		region = "com.br"
	}
	return ThumbnailHosts{
		Region:           region,
		AlternateRegions: []string{"com", "com.br", "es", "de", "fr"},
		MirrorA:          "https://habboemotion.com",
		MirrorACDN:       "https://cdn.habboemotion.com",
		MirrorB:          "https://www.habbowidgets.com",
		MirrorBBare:      "https://habbowidgets.com",
		OfficialImages:   "https://images.habbo.com",
		Placeholder:      "https://via.placeholder.com",
		AvatarSize:       "m",
	}
}

// HotelBase returns the official hotel root for a region
func HotelBase(region string) string {
	return "https://www.habbo." + region
}

// BuildThumbnailCandidates returns the ordered, de-duplicated URLs to try for
// one entry and color:
//  1. source-specific paths for the entry's provenance
//  2. official clothing imaging with the color, then color 1, and the
//     official icon pair
//  3. the same pair on the alternate regions
//  4. an avatar render wearing only this garment
//  5. a placeholder that always resolves
func BuildThumbnailCandidates(entry models.CatalogEntry, colorID int, hosts ThumbnailHosts) []string {
	if colorID <= 0 {
		colorID = entry.FirstColor()
	}
	family := string(entry.Family)
	id := entry.GarmentID
	code := utils.AssetCode(entry)

	var urls []string

	switch entry.Provenance {
	case models.ProvenanceMirrorA:
		urls = append(urls,
			fmt.Sprintf("%s/images/clothing/%s/%s.png", hosts.MirrorA, family, code),
			fmt.Sprintf("%s/assets/clothing/%s.png", hosts.MirrorA, code),
			fmt.Sprintf("%s/clothing/%s.gif", hosts.MirrorACDN, code),
			fmt.Sprintf("%s/images/%s.png", hosts.MirrorA, code),
		)
	case models.ProvenanceMirrorB:
		if utils.IsAbsoluteURL(entry.ExternalAssetHint) {
			urls = append(urls, strings.TrimSpace(entry.ExternalAssetHint))
		}
		urls = append(urls,
			fmt.Sprintf("%s/images/%s.gif", hosts.MirrorB, code),
			fmt.Sprintf("%s/images/%s%d.gif", hosts.MirrorB, family, id),
			fmt.Sprintf("%s/images/%s.gif", hosts.MirrorBBare, code),
		)
	case models.ProvenanceOfficial:
		urls = append(urls, officialIconPair(hosts.OfficialImages, family, id, colorID)...)
	}

	urls = append(urls, officialClothingPair(hosts.Region, family, id, colorID)...)
	urls = append(urls, officialIconPair(hosts.OfficialImages, family, id, colorID)...)

	for _, region := range hosts.AlternateRegions {
		if region == hosts.Region {
			continue
		}
		urls = append(urls, officialClothingPair(region, family, id, colorID)...)
	}

	isolated := models.Figure{entry.Family: {GarmentID: id, ColorIDs: []int{colorID}}}
	opts := utils.DefaultAvatarImageOptions()
	if hosts.AvatarSize != "" {
		opts.Size = hosts.AvatarSize
	}
	urls = append(urls, utils.AvatarImageURL(HotelBase(hosts.Region), utils.EncodeFigure(isolated), opts))

	urls = append(urls, fmt.Sprintf("%s/64x64/f0f0f0/666?text=%s", hosts.Placeholder, strings.ToUpper(family)))

	return dedupeURLs(urls)
}

func officialIconPair(host, family string, id, colorID int) []string {
	return []string{
		fmt.Sprintf("%s/c_images/clothing/icon_%s_%d_%d.png", host, family, id, colorID),
		fmt.Sprintf("%s/c_images/clothing/icon_%s_%d_1.png", host, family, id),
	}
}

func officialClothingPair(region, family string, id, colorID int) []string {
	base := HotelBase(region)
	return []string{
		fmt.Sprintf("%s/habbo-imaging/clothing/%s/%d/%d.png", base, family, id, colorID),
		fmt.Sprintf("%s/habbo-imaging/clothing/%s/%d/1.png", base, family, id),
	}
}

// dedupeURLs drops empty strings and repeats, keeping first occurrences
func dedupeURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
