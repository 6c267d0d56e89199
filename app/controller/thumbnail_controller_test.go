package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-studio/models"
	"figure-studio/service"
)

func TestThumbnailCandidatesAcceptGarmentZero(t *testing.T) {
	store := service.NewCatalogStore()
	store.Set(service.NewReconciledCatalog([]models.CatalogEntry{{
		Family:            models.FamilyHat,
		GarmentID:         0,
		AvailableColorIDs: []int{1},
		Provenance:        models.ProvenanceMirrorB,
	}}), "test")

	engine := service.NewThumbnailEngine(service.NewProbeCache(), service.DefaultThumbnailHosts("com"), nil)
	c := NewThumbnailController(service.NewCatalogService(store, nil), service.NewThumbnailService(engine, nil, nil, 1))

	rec := httptest.NewRecorder()
	c.Candidates(rec, httptest.NewRequest(http.MethodGet, "/api/thumbnails/candidates?family=ha&garmentId=0", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		ColorID    int      `json:"colorId"`
		Candidates []string `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.ColorID)
	assert.Contains(t, body.Candidates, "https://www.habbo.com/habbo-imaging/clothing/ha/0/1.png")

	rec = httptest.NewRecorder()
	c.Candidates(rec, httptest.NewRequest(http.MethodGet, "/api/thumbnails/candidates?family=ha&garmentId=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
