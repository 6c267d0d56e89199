package service

import (
	"context"

	"figure-studio/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListSnapshots(ctx context.Context, folderID string) ([]models.DriveSnapshot, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
