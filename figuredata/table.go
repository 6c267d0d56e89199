package figuredata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"figure-studio/models"
)

//go:embed figuredata.json
var defaultFiguredata []byte

// FiguredataConfig represents the reference table file structure
type FiguredataConfig struct {
	Palettes map[string]map[string]PaletteColor `json:"palettes"`
	Sets     map[string]SetConfig               `json:"sets"`
}

// PaletteColor is one color of a palette
type PaletteColor struct {
	Hex        string `json:"hex"`
	Club       bool   `json:"club"`
	Selectable bool   `json:"selectable"`
}

// SetConfig describes one family: its palette and known garments
type SetConfig struct {
	PaletteID string                   `json:"paletteId"`
	Garments  map[string]GarmentConfig `json:"garments"`
}

// GarmentConfig holds the population flags of one garment
type GarmentConfig struct {
	Colorable  bool   `json:"colorable"`
	Selectable bool   `json:"selectable"`
	Club       bool   `json:"club"`
	Gender     string `json:"gender"`
	ColorSlots int    `json:"colorSlots"`
}

// Garment is a resolved reference table row
type Garment struct {
	ID         int
	Colorable  bool
	Selectable bool
	Club       bool
	Gender     models.Gender
	ColorSlots int
}

type familySet struct {
	paletteID string
	garments  map[int]Garment
}

// Table is the read-only palette/garment reference table
type Table struct {
	palettes map[string]map[int]PaletteColor
	sets     map[models.Family]familySet
}

// Load reads a reference table from a JSON file. An empty path loads the embedded default.
func Load(path string) (*Table, error) {
	if path == "" {
		table, err := Parse(defaultFiguredata)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded figuredata: %w", err)
		}
		log.Printf("✅ Figuredata: Loaded embedded reference table (%d families)", len(table.sets))
		return table, nil
	}

	// Resolve config path
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read figuredata: %w", err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Figuredata: Successfully loaded reference table from %s (%d families)", path, len(table.sets))
	return table, nil
}

// Parse builds a table from JSON bytes
func Parse(data []byte) (*Table, error) {
	var config FiguredataConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse figuredata: %w", err)
	}
	return New(config)
}

// New validates a config and builds the lookup table
func New(config FiguredataConfig) (*Table, error) {
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid figuredata: %w", err)
	}

	table := &Table{
		palettes: make(map[string]map[int]PaletteColor, len(config.Palettes)),
		sets:     make(map[models.Family]familySet, len(config.Sets)),
	}

	for paletteID, colors := range config.Palettes {
		parsed := make(map[int]PaletteColor, len(colors))
		for rawID, color := range colors {
			id, err := strconv.Atoi(rawID)
			if err != nil {
				return nil, fmt.Errorf("palette %s: invalid color id %q", paletteID, rawID)
			}
			parsed[id] = color
		}
		table.palettes[paletteID] = parsed
	}

	for rawFamily, set := range config.Sets {
		family := models.Family(rawFamily)
		garments := make(map[int]Garment, len(set.Garments))
		for rawID, garment := range set.Garments {
			id, err := strconv.Atoi(rawID)
			if err != nil {
				return nil, fmt.Errorf("set %s: invalid garment id %q", rawFamily, rawID)
			}
			slots := garment.ColorSlots
			if slots < 1 {
				slots = 1
			}
			if slots > 2 {
				slots = 2
			}
			garments[id] = Garment{
				ID:         id,
				Colorable:  garment.Colorable,
				Selectable: garment.Selectable,
				Club:       garment.Club,
				Gender:     models.Gender(garment.Gender),
				ColorSlots: slots,
			}
		}
		table.sets[family] = familySet{paletteID: set.PaletteID, garments: garments}
	}

	return table, nil
}

func validateConfig(config *FiguredataConfig) error {
	if len(config.Sets) == 0 {
		return fmt.Errorf("sets are required")
	}
	for rawFamily, set := range config.Sets {
		if !models.Family(rawFamily).IsKnown() {
			return fmt.Errorf("unknown family %q", rawFamily)
		}
		if set.PaletteID != "" {
			if _, ok := config.Palettes[set.PaletteID]; !ok {
				return fmt.Errorf("set %s references missing palette %s", rawFamily, set.PaletteID)
			}
		}
	}
	return nil
}

// KnowsFamily reports whether the table has a set for family
func (t *Table) KnowsFamily(family models.Family) bool {
	_, ok := t.sets[family]
	return ok
}

// Families returns the families the table knows, in canonical order
func (t *Table) Families() []models.Family {
	var families []models.Family
	for _, family := range models.CanonicalFamilyOrder {
		if t.KnowsFamily(family) {
			families = append(families, family)
		}
	}
	return families
}

// Garment looks up one garment of a family
func (t *Table) Garment(family models.Family, garmentID int) (Garment, bool) {
	set, ok := t.sets[family]
	if !ok {
		return Garment{}, false
	}
	garment, ok := set.garments[garmentID]
	return garment, ok
}

// Garments returns the selectable garments of a family, ordered by id
func (t *Table) Garments(family models.Family) []Garment {
	set, ok := t.sets[family]
	if !ok {
		return nil
	}
	garments := make([]Garment, 0, len(set.garments))
	for _, garment := range set.garments {
		if garment.Selectable {
			garments = append(garments, garment)
		}
	}
	sort.Slice(garments, func(i, j int) bool { return garments[i].ID < garments[j].ID })
	return garments
}

// SelectableColors returns the selectable color ids of a family's palette, ascending
func (t *Table) SelectableColors(family models.Family) []int {
	set, ok := t.sets[family]
	if !ok {
		return nil
	}
	palette := t.palettes[set.paletteID]
	colors := make([]int, 0, len(palette))
	for id, color := range palette {
		if color.Selectable {
			colors = append(colors, id)
		}
	}
	sort.Ints(colors)
	return colors
}

// DefaultColor is the backfill color for garments published without colors:
// the lowest selectable non-club color of the family palette, falling back to
// the lowest selectable one.
func (t *Table) DefaultColor(family models.Family) (int, bool) {
	set, ok := t.sets[family]
	if !ok {
		return 0, false
	}
	palette := t.palettes[set.paletteID]
	best, bestClub := 0, 0
	for _, id := range t.SelectableColors(family) {
		if !palette[id].Club {
			if best == 0 {
				best = id
			}
		} else if bestClub == 0 {
			bestClub = id
		}
	}
	if best != 0 {
		return best, true
	}
	if bestClub != 0 {
		return bestClub, true
	}
	return 0, false
}

// ColorHex returns the hex of a color in a family's palette
func (t *Table) ColorHex(family models.Family, colorID int) (string, bool) {
	set, ok := t.sets[family]
	if !ok {
		return "", false
	}
	color, ok := t.palettes[set.paletteID][colorID]
	if !ok {
		return "", false
	}
	return color.Hex, true
}
