package models

import "time"

// DriveSnapshot is a listing dump stored in a Google Drive folder
type DriveSnapshot struct {
	FileID     string `json:"fileId"`
	Name       string `json:"name"`
	ModifiedAt string `json:"modifiedAt"` // RFC3339 format from Google Drive
}

// CatalogSnapshot is a reconciled catalog persisted after a successful reload
type CatalogSnapshot struct {
	ID        int64          `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Entries   []CatalogEntry `json:"entries"`
}
