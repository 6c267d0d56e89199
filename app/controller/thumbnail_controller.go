package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"figure-studio/models"
	"figure-studio/service"
	"figure-studio/utils"
)

// ThumbnailController handles HTTP requests for catalog thumbnails
type ThumbnailController struct {
	catalogService   service.CatalogServiceInterface
	thumbnailService service.ThumbnailServiceInterface
}

// NewThumbnailController creates a new ThumbnailController
func NewThumbnailController(catalogService service.CatalogServiceInterface, thumbnailService service.ThumbnailServiceInterface) *ThumbnailController {
	return &ThumbnailController{
		catalogService:   catalogService,
		thumbnailService: thumbnailService,
	}
}

// entryFromQuery resolves ?family=&garmentId=&color= to a catalog entry and color
func (c *ThumbnailController) entryFromQuery(r *http.Request) (models.CatalogEntry, int, error) {
	query := r.URL.Query()
	family, ok := utils.NormalizeFamily(query.Get("family"))
	if !ok {
		return models.CatalogEntry{}, 0, fmt.Errorf("%w: %q", service.ErrUnknownFamily, query.Get("family"))
	}
	garmentID, err := strconv.Atoi(query.Get("garmentId"))
	if err != nil || garmentID < 0 {
		return models.CatalogEntry{}, 0, errBadRequest("garmentId must be a non-negative integer")
	}
	colorID := 0
	if raw := query.Get("color"); raw != "" {
		colorID, err = strconv.Atoi(raw)
		if err != nil || colorID <= 0 {
			return models.CatalogEntry{}, 0, errBadRequest("color must be a positive integer")
		}
	}

	entry, err := c.catalogService.Entry(family, garmentID)
	if err != nil {
		return models.CatalogEntry{}, 0, err
	}
	if colorID == 0 {
		colorID = entry.FirstColor()
	}
	return entry, colorID, nil
}

type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

func errBadRequest(msg string) error { return badRequestError{msg: msg} }

func thumbnailStatus(err error) int {
	var bad badRequestError
	if errors.As(err, &bad) {
		return http.StatusBadRequest
	}
	return statusFor(err)
}

// Candidates handles GET /api/thumbnails/candidates?family=hr&garmentId=828&color=45
func (c *ThumbnailController) Candidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry, colorID, err := c.entryFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), thumbnailStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entry":      entry,
		"colorId":    colorID,
		"candidates": c.thumbnailService.Candidates(entry, colorID),
	})
}

// Resolve handles GET /api/thumbnails/resolve?family=hr&garmentId=828&color=45
// With stream=true every transition is written as one JSON line as it happens.
func (c *ThumbnailController) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry, colorID, err := c.entryFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), thumbnailStatus(err))
		return
	}

	stream, _ := strconv.ParseBool(r.URL.Query().Get("stream"))
	if !stream {
		resolution, err := c.thumbnailService.Resolve(r.Context(), entry, colorID, nil)
		if err != nil {
			log.Printf("⚠️  Resolve: cascade for %s abandoned: %v", entry.Key(), err)
			return
		}
		writeJSON(w, http.StatusOK, resolution)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	encoder := json.NewEncoder(w)
	_, err = c.thumbnailService.Resolve(r.Context(), entry, colorID, func(t models.ThumbnailTransition) {
		if err := encoder.Encode(t); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	})
	if err != nil {
		log.Printf("⚠️  Resolve: stream for %s abandoned: %v", entry.Key(), err)
	}
}

// Image handles GET /api/thumbnails/image?family=hr&garmentId=828&color=45&size=icon|large
func (c *ThumbnailController) Image(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry, colorID, err := c.entryFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), thumbnailStatus(err))
		return
	}
	size := r.URL.Query().Get("size")
	if size == "" {
		size = "icon"
	}
	if size != "icon" && size != "large" {
		http.Error(w, "size must be icon or large", http.StatusBadRequest)
		return
	}

	data, err := c.thumbnailService.Image(r.Context(), entry, colorID, size)
	if err != nil {
		log.Printf("❌ Image: %s: %v", entry.Key(), err)
		http.Error(w, fmt.Sprintf("Failed to load thumbnail: %v", err), thumbnailStatus(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Warmup handles POST /admin/thumbnails/warmup?family=hr
func (c *ThumbnailController) Warmup(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Warmup: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var filter models.CatalogFilter
	if raw := r.URL.Query().Get("family"); raw != "" {
		family, ok := utils.NormalizeFamily(raw)
		if !ok {
			http.Error(w, fmt.Sprintf("Invalid family: %s", raw), http.StatusBadRequest)
			return
		}
		filter.Family = family
	}

	entries, err := c.catalogService.List(filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list catalog: %v", err), statusFor(err))
		return
	}

	report, err := c.thumbnailService.Warmup(r.Context(), entries)
	if err != nil {
		log.Printf("⚠️  Warmup: %v", err)
	}
	writeJSON(w, http.StatusOK, report)
}
