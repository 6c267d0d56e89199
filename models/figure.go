package models

// Family is a garment slot code as it appears in a figure code (e.g. "hr")
type Family string

const (
	FamilyHead           Family = "hd"
	FamilyHair           Family = "hr"
	FamilyChest          Family = "ch"
	FamilyLegs           Family = "lg"
	FamilyShoes          Family = "sh"
	FamilyHat            Family = "ha"
	FamilyEyeAccessory   Family = "ea"
	FamilyFaceAccessory  Family = "fa"
	FamilyChestAccessory Family = "ca"
	FamilyWaistAccessory Family = "wa"
	FamilyCoat           Family = "cc"
	FamilyChestPrint     Family = "cp"
)

// CanonicalFamilyOrder is the order families are written in a figure code
var CanonicalFamilyOrder = []Family{
	FamilyHead,
	FamilyHair,
	FamilyChest,
	FamilyCoat,
	FamilyLegs,
	FamilyShoes,
	FamilyHat,
	FamilyEyeAccessory,
	FamilyFaceAccessory,
	FamilyChestAccessory,
	FamilyWaistAccessory,
	FamilyChestPrint,
}

// MandatoryFamilies is the minimum set for a renderable avatar
var MandatoryFamilies = []Family{FamilyHead, FamilyHair, FamilyChest, FamilyLegs, FamilyShoes}

// OptionalFamilies are the families whose absence means "not worn"
var OptionalFamilies = []Family{
	FamilyHat,
	FamilyEyeAccessory,
	FamilyFaceAccessory,
	FamilyChestAccessory,
	FamilyWaistAccessory,
	FamilyCoat,
	FamilyChestPrint,
}

// IsKnown reports whether f is one of the twelve figure families
func (f Family) IsKnown() bool {
	for _, known := range CanonicalFamilyOrder {
		if f == known {
			return true
		}
	}
	return false
}

// IsMandatory reports whether f must be occupied for a renderable avatar
func (f Family) IsMandatory() bool {
	for _, mandatory := range MandatoryFamilies {
		if f == mandatory {
			return true
		}
	}
	return false
}

// FigurePart is one garment choice: a garment id plus one or two color ids
type FigurePart struct {
	GarmentID int   `json:"garmentId"`
	ColorIDs  []int `json:"colorIds"`
}

// Figure maps each occupied family to its part. Missing keys are not worn.
type Figure map[Family]FigurePart

// DefaultFigure returns the minimal presentable avatar
// hd-180-2.hr-828-45.ch-665-92.lg-700-1.sh-705-1
func DefaultFigure() Figure {
	return Figure{
		FamilyHead:  {GarmentID: 180, ColorIDs: []int{2}},
		FamilyHair:  {GarmentID: 828, ColorIDs: []int{45}},
		FamilyChest: {GarmentID: 665, ColorIDs: []int{92}},
		FamilyLegs:  {GarmentID: 700, ColorIDs: []int{1}},
		FamilyShoes: {GarmentID: 705, ColorIDs: []int{1}},
	}
}

// Clone returns a deep copy so callers never share color slices
func (f Figure) Clone() Figure {
	out := make(Figure, len(f))
	for family, part := range f {
		colors := make([]int, len(part.ColorIDs))
		copy(colors, part.ColorIDs)
		out[family] = FigurePart{GarmentID: part.GarmentID, ColorIDs: colors}
	}
	return out
}

// MissingMandatory lists mandatory families that are not occupied, in canonical order
func (f Figure) MissingMandatory() []Family {
	var missing []Family
	for _, family := range CanonicalFamilyOrder {
		if !family.IsMandatory() {
			continue
		}
		if _, ok := f[family]; !ok {
			missing = append(missing, family)
		}
	}
	return missing
}

// FillMissing copies parts from fallback into every mandatory family f lacks
func (f Figure) FillMissing(fallback Figure) Figure {
	out := f.Clone()
	for _, family := range f.MissingMandatory() {
		if part, ok := fallback[family]; ok {
			colors := make([]int, len(part.ColorIDs))
			copy(colors, part.ColorIDs)
			out[family] = FigurePart{GarmentID: part.GarmentID, ColorIDs: colors}
		}
	}
	return out
}
