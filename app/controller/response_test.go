package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"figure-studio/repository"
	"figure-studio/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrCatalogNotLoaded, http.StatusServiceUnavailable},
		{fmt.Errorf("ch-1: %w", service.ErrEntryNotFound), http.StatusNotFound},
		{service.ErrThumbnailExhausted, http.StatusNotFound},
		{repository.ErrLookNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: %q", service.ErrUnknownFamily, "zz"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}

	assert.Equal(t, http.StatusBadRequest, thumbnailStatus(errBadRequest("color must be a positive integer")))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]int{"count": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}
