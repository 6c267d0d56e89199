package models

import "time"

// Look is a saved figure
type Look struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FigureCode string    `json:"figureCode"`
	Gender     Gender    `json:"gender"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SaveLookRequest represents the request body for saving a look
type SaveLookRequest struct {
	Name       string `json:"name"`
	FigureCode string `json:"figureCode"`
	Gender     string `json:"gender"`
}

// LookResponse is a saved look plus its decoded parts
type LookResponse struct {
	Look
	Figure  Figure   `json:"figure"`
	Skipped []string `json:"skipped,omitempty"`
}
