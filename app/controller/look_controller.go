package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"figure-studio/models"
	"figure-studio/repository"
	"figure-studio/utils"
)

// LookController handles HTTP requests for saved looks
type LookController struct {
	repository repository.LookRepositoryInterface
}

// NewLookController creates a new LookController
func NewLookController(repo repository.LookRepositoryInterface) *LookController {
	return &LookController{
		repository: repo,
	}
}

// SaveLook handles POST /api/looks
// The figure code is normalized through the codec before it is stored
func (c *LookController) SaveLook(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SaveLook: Received %s request to %s", r.Method, r.URL.Path)

	var req models.SaveLookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SaveLook: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	decoded := utils.DecodeFigure(req.FigureCode)
	if len(decoded.Figure) == 0 {
		http.Error(w, "figureCode has no valid segments", http.StatusBadRequest)
		return
	}

	look := &models.Look{
		Name:       name,
		FigureCode: utils.EncodeFigure(decoded.Figure),
		Gender:     utils.MapGender(req.Gender),
	}
	if err := c.repository.Save(r.Context(), look); err != nil {
		log.Printf("❌ SaveLook: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save look: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, models.LookResponse{
		Look:    *look,
		Figure:  decoded.Figure,
		Skipped: decoded.SkippedStrings(),
	})
}

// ListLooks handles GET /api/looks?limit=20
func (c *LookController) ListLooks(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	looks, err := c.repository.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("❌ ListLooks: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list looks: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, looks)
}

// GetLook handles GET /api/looks/{id}
func (c *LookController) GetLook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/looks/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	look, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get look: %v", err), statusFor(err))
		return
	}

	decoded := utils.DecodeFigure(look.FigureCode)
	writeJSON(w, http.StatusOK, models.LookResponse{
		Look:    *look,
		Figure:  decoded.Figure,
		Skipped: decoded.SkippedStrings(),
	})
}
