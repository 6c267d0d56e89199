package models

// SelectGarmentRequest represents the request body for applying a catalog entry
type SelectGarmentRequest struct {
	Code      string `json:"code"`
	Family    string `json:"family"`
	GarmentID int    `json:"garmentId"`
}

// SelectColorsRequest represents the request body for a color-only update
type SelectColorsRequest struct {
	Code   string `json:"code"`
	Family string `json:"family"`
	Colors []int  `json:"colors"`
}

// RemoveFamilyRequest represents the request body for taking off an optional garment
type RemoveFamilyRequest struct {
	Code   string `json:"code"`
	Family string `json:"family"`
}

// FigureResponse represents a figure returned by the figure endpoints
type FigureResponse struct {
	Code      string   `json:"code"`
	Figure    Figure   `json:"figure"`
	AvatarURL string   `json:"avatarUrl"`
	Missing   []Family `json:"missing,omitempty"`
	Skipped   []string `json:"skipped,omitempty"`
}
