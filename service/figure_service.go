package service

import (
	"errors"
	"fmt"
	"log"

	"figure-studio/models"
	"figure-studio/utils"
)

// ErrUnknownFamily is returned when a request names a family that does not exist
var ErrUnknownFamily = errors.New("unknown family")

// FigureService applies selection, random generation and the codec against
// the current catalog
type FigureService struct {
	store     *CatalogStore
	generator *RandomFigureGenerator
	region    string
}

// Ensure FigureService implements FigureServiceInterface
var _ FigureServiceInterface = (*FigureService)(nil)

// NewFigureService creates a new FigureService
func NewFigureService(store *CatalogStore, generator *RandomFigureGenerator, region string) *FigureService {
	return &FigureService{store: store, generator: generator, region: region}
}

// Default returns the minimal presentable figure
func (s *FigureService) Default() models.FigureResponse {
	return s.respond(models.DefaultFigure(), nil, nil)
}

// Decode parses a figure code, reporting skipped segments
func (s *FigureService) Decode(code string) models.FigureResponse {
	decoded := utils.DecodeFigure(code)
	return s.respond(decoded.Figure, decoded.SkippedStrings(), nil)
}

// Random samples a figure. Mandatory families the catalog cannot fill are
// taken from the default figure and listed in Missing.
func (s *FigureService) Random(opts RandomOptions) (models.FigureResponse, error) {
	catalog, err := s.store.Current()
	if err != nil {
		return models.FigureResponse{}, err
	}

	result := s.generator.Generate(catalog, opts)
	figure := result.Figure
	if len(result.Missing) > 0 {
		log.Printf("⚠️  Random figure missing %v, using defaults", result.Missing)
		figure = figure.FillMissing(models.DefaultFigure())
	}
	log.Printf("🎲 Random figure: %s", utils.EncodeFigure(figure))
	return s.respond(figure, nil, result.Missing), nil
}

// SelectGarment puts a catalog entry on the decoded figure
func (s *FigureService) SelectGarment(req models.SelectGarmentRequest) (models.FigureResponse, error) {
	family, err := parseFamily(req.Family)
	if err != nil {
		return models.FigureResponse{}, err
	}
	entry, err := s.store.Entry(family, req.GarmentID)
	if err != nil {
		return models.FigureResponse{}, fmt.Errorf("%s-%d: %w", family, req.GarmentID, err)
	}

	decoded := utils.DecodeFigure(req.Code)
	return s.respond(ApplyEntry(decoded.Figure, entry), decoded.SkippedStrings(), nil), nil
}

// SetColors changes the colors of a worn garment
func (s *FigureService) SetColors(req models.SelectColorsRequest) (models.FigureResponse, error) {
	family, err := parseFamily(req.Family)
	if err != nil {
		return models.FigureResponse{}, err
	}

	decoded := utils.DecodeFigure(req.Code)
	part, worn := decoded.Figure[family]
	if !worn {
		return s.respond(decoded.Figure, decoded.SkippedStrings(), nil), nil
	}

	entry, err := s.store.Entry(family, part.GarmentID)
	if err != nil {
		return models.FigureResponse{}, fmt.Errorf("%s-%d: %w", family, part.GarmentID, err)
	}
	figure := ApplyColors(decoded.Figure, family, req.Colors, entry)
	return s.respond(figure, decoded.SkippedStrings(), nil), nil
}

// RemoveFamily takes off an optional garment
func (s *FigureService) RemoveFamily(req models.RemoveFamilyRequest) (models.FigureResponse, error) {
	family, err := parseFamily(req.Family)
	if err != nil {
		return models.FigureResponse{}, err
	}
	decoded := utils.DecodeFigure(req.Code)
	return s.respond(RemoveFamily(decoded.Figure, family), decoded.SkippedStrings(), nil), nil
}

func (s *FigureService) respond(figure models.Figure, skipped []string, missing []models.Family) models.FigureResponse {
	code := utils.EncodeFigure(figure)
	return models.FigureResponse{
		Code:      code,
		Figure:    figure,
		AvatarURL: utils.AvatarImageURL(HotelBase(s.region), code, utils.DefaultAvatarImageOptions()),
		Missing:   missing,
		Skipped:   skipped,
	}
}

func parseFamily(raw string) (models.Family, error) {
	family, ok := utils.NormalizeFamily(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, raw)
	}
	return family, nil
}
