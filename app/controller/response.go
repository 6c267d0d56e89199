package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"figure-studio/repository"
	"figure-studio/service"
)

// writeJSON encodes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, service.ErrThumbnailExhausted),
		errors.Is(err, repository.ErrLookNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnknownFamily):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
