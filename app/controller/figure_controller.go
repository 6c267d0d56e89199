package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"figure-studio/models"
	"figure-studio/service"
	"figure-studio/utils"
)

// FigureController handles HTTP requests for building figures
type FigureController struct {
	figureService service.FigureServiceInterface
}

// NewFigureController creates a new FigureController
func NewFigureController(figureService service.FigureServiceInterface) *FigureController {
	return &FigureController{
		figureService: figureService,
	}
}

// DefaultFigure handles GET /api/figure/default
func (c *FigureController) DefaultFigure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, c.figureService.Default())
}

// DecodeFigure handles GET /api/figure/decode?code=hd-180-2.hr-828-45
func (c *FigureController) DecodeFigure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, c.figureService.Decode(r.URL.Query().Get("code")))
}

// RandomFigure handles GET /api/figure/random?gender=M|F|any&excludeClub=true
func (c *FigureController) RandomFigure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	gender, ok := utils.ParseGenderFilter(query.Get("gender"))
	if !ok {
		http.Error(w, "gender must be M, F, U or any", http.StatusBadRequest)
		return
	}

	opts := service.RandomOptions{Gender: gender}
	if raw := query.Get("excludeClub"); raw != "" {
		exclude, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "excludeClub must be true or false", http.StatusBadRequest)
			return
		}
		opts.ExcludeClub = exclude
	}

	response, err := c.figureService.Random(opts)
	if err != nil {
		log.Printf("❌ RandomFigure: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate figure: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// SelectGarment handles POST /api/figure/select
func (c *FigureController) SelectGarment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectGarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SelectGarment: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.GarmentID <= 0 {
		http.Error(w, "garmentId must be greater than 0", http.StatusBadRequest)
		return
	}

	response, err := c.figureService.SelectGarment(req)
	if err != nil {
		log.Printf("❌ SelectGarment: %v", err)
		http.Error(w, fmt.Sprintf("Failed to select garment: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// SetColors handles POST /api/figure/colors
func (c *FigureController) SetColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectColorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetColors: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	response, err := c.figureService.SetColors(req)
	if err != nil {
		log.Printf("❌ SetColors: %v", err)
		http.Error(w, fmt.Sprintf("Failed to set colors: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// RemoveFamily handles POST /api/figure/remove
func (c *FigureController) RemoveFamily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RemoveFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ RemoveFamily: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	response, err := c.figureService.RemoveFamily(req)
	if err != nil {
		log.Printf("❌ RemoveFamily: %v", err)
		http.Error(w, fmt.Sprintf("Failed to remove garment: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, response)
}
