package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"figure-studio/models"
)

var (
	assetExtRegex      = regexp.MustCompile(`(?i)\.(png|gif|jpg|jpeg|swf)$`)
	familyPrefixRegex  = regexp.MustCompile(`(?i)^[a-z]+_(\d+)`)
	trailingDigitRegex = regexp.MustCompile(`(\d+)$`)
	anyDigitRegex      = regexp.MustCompile(`(\d+)`)
)

// ExtractGarmentID pulls the garment id out of a mirror asset code.
// Patterns are tried in order: family_123, trailing digits, first digits.
// Examples: "hr_828" -> 828, "shirt_f_665" -> 665, "acc_chest_U_tie2" -> 2
func ExtractGarmentID(code string) (int, error) {
	name := assetExtRegex.ReplaceAllString(strings.TrimSpace(code), "")
	if name == "" {
		return 0, fmt.Errorf("empty asset code")
	}

	for _, pattern := range []*regexp.Regexp{familyPrefixRegex, trailingDigitRegex, anyDigitRegex} {
		matches := pattern.FindStringSubmatch(name)
		if len(matches) != 2 || len(matches[1]) > MaxIDDigits {
			continue
		}
		id, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		return id, nil
	}

	return 0, fmt.Errorf("invalid asset code: no garment id in %q", code)
}

// AssetCode returns the hint to use when building mirror asset paths,
// falling back to the family_garmentId convention both mirrors understand.
func AssetCode(entry models.CatalogEntry) string {
	hint := strings.TrimSpace(entry.ExternalAssetHint)
	if hint != "" && !IsAbsoluteURL(hint) {
		return assetExtRegex.ReplaceAllString(hint, "")
	}
	return fmt.Sprintf("%s_%d", entry.Family, entry.GarmentID)
}

// IsAbsoluteURL reports whether s looks like an http(s) URL
func IsAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
