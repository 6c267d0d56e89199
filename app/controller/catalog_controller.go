package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"figure-studio/models"
	"figure-studio/service"
	"figure-studio/utils"
)

// CatalogController handles HTTP requests for the reconciled catalog
type CatalogController struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService service.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCatalog handles GET /api/catalog?family=hr&gender=M&club=false&source=official&q=
func (c *CatalogController) ListCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	var filter models.CatalogFilter

	if raw := query.Get("family"); raw != "" {
		family, ok := utils.NormalizeFamily(raw)
		if !ok {
			http.Error(w, fmt.Sprintf("Invalid family: %s", raw), http.StatusBadRequest)
			return
		}
		filter.Family = family
	}

	gender, ok := utils.ParseGenderFilter(query.Get("gender"))
	if !ok {
		http.Error(w, "gender must be M, F, U or any", http.StatusBadRequest)
		return
	}
	filter.Gender = gender

	if raw := query.Get("club"); raw != "" {
		includeClub, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "club must be true or false", http.StatusBadRequest)
			return
		}
		filter.ExcludeClub = !includeClub
	}

	if raw := query.Get("source"); raw != "" {
		provenance := models.Provenance(raw)
		if provenance.Rank() == 0 {
			http.Error(w, "source must be official, mirrorA or mirrorB", http.StatusBadRequest)
			return
		}
		filter.Provenance = provenance
	}
	filter.Query = query.Get("q")

	entries, err := c.catalogService.List(filter)
	if err != nil {
		log.Printf("❌ ListCatalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list catalog: %v", err), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

// CatalogStatus handles GET /api/catalog/status
func (c *CatalogController) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, c.catalogService.Status())
}

// ReloadCatalog handles POST /admin/catalog/reload
func (c *CatalogController) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ReloadCatalog: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := c.catalogService.Reload(r.Context())
	if errors.Is(err, service.ErrNoListings) {
		// Still serving the previous catalog
		writeJSON(w, http.StatusBadGateway, report)
		return
	}
	if err != nil {
		log.Printf("❌ ReloadCatalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to reload catalog: %v", err), statusFor(err))
		return
	}

	log.Printf("✅ ReloadCatalog: %d entries from %s", report.Entries, report.Origin)
	writeJSON(w, http.StatusOK, report)
}
