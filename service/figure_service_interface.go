package service

import (
	"figure-studio/models"
)

// FigureServiceInterface defines the interface for figure operations
type FigureServiceInterface interface {
	Default() models.FigureResponse
	Decode(code string) models.FigureResponse
	Random(opts RandomOptions) (models.FigureResponse, error)
	SelectGarment(req models.SelectGarmentRequest) (models.FigureResponse, error)
	SetColors(req models.SelectColorsRequest) (models.FigureResponse, error)
	RemoveFamily(req models.RemoveFamilyRequest) (models.FigureResponse, error)
}
