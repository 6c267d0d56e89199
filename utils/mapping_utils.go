package utils

import (
	"strconv"
	"strings"

	"figure-studio/models"
)

// MapFamilyToName maps a family code to its human-readable name
func MapFamilyToName(family models.Family) string {
	familyMap := map[models.Family]string{
		models.FamilyHead:           "head",
		models.FamilyHair:           "hair",
		models.FamilyChest:          "top",
		models.FamilyLegs:           "bottom",
		models.FamilyShoes:          "shoes",
		models.FamilyHat:            "hat",
		models.FamilyEyeAccessory:   "glasses",
		models.FamilyFaceAccessory:  "face accessory",
		models.FamilyChestAccessory: "chest accessory",
		models.FamilyWaistAccessory: "waist accessory",
		models.FamilyCoat:           "coat",
		models.FamilyChestPrint:     "print",
	}

	if name, exists := familyMap[family]; exists {
		return name
	}

	// If not found, return the code itself
	return string(family)
}

// NormalizeFamily maps source spellings ("HR", " hr ", "hair") to a family code
// Returns false when the value is not one of the known families
func NormalizeFamily(raw string) (models.Family, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	aliases := map[string]models.Family{
		"hair":     models.FamilyHair,
		"head":     models.FamilyHead,
		"shirt":    models.FamilyChest,
		"top":      models.FamilyChest,
		"legs":     models.FamilyLegs,
		"trousers": models.FamilyLegs,
		"shoes":    models.FamilyShoes,
		"hat":      models.FamilyHat,
		"glasses":  models.FamilyEyeAccessory,
		"coat":     models.FamilyCoat,
		"print":    models.FamilyChestPrint,
	}
	if family, ok := aliases[value]; ok {
		return family, true
	}
	family := models.Family(value)
	return family, family.IsKnown()
}

// MapGender maps source gender spellings to M, F or U. Unknown values are unisex.
func MapGender(raw string) models.Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M", "MALE", "BOY":
		return models.GenderMale
	case "F", "FEMALE", "GIRL":
		return models.GenderFemale
	default:
		return models.GenderUnisex
	}
}

// ParseGenderFilter maps a query value to a gender filter; "" and "any" mean no filter
func ParseGenderFilter(raw string) (models.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "any", "all":
		return "", true
	case "m", "male":
		return models.GenderMale, true
	case "f", "female":
		return models.GenderFemale, true
	case "u", "unisex":
		return models.GenderUnisex, true
	default:
		return "", false
	}
}

// MapClubTier maps source club markers ("HC", "1", "club", true) to a tier
func MapClubTier(raw string) models.ClubTier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hc", "1", "2", "club", "true", "vip":
		return models.ClubOnly
	default:
		return models.ClubFree
	}
}

// ParseColorIDs converts source color lists to integers, dropping anything non-numeric
// and duplicates while keeping the original order
func ParseColorIDs(raw []string) []int {
	colors := make([]int, 0, len(raw))
	seen := make(map[int]bool, len(raw))
	for _, value := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || id < 0 {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		colors = append(colors, id)
	}
	return colors
}

// FormatColorIDs joins color ids as "1,45,92" for storage
func FormatColorIDs(colors []int) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// SplitColorIDs parses a stored "1,45,92" list
func SplitColorIDs(stored string) []int {
	if strings.TrimSpace(stored) == "" {
		return nil
	}
	return ParseColorIDs(strings.Split(stored, ","))
}
