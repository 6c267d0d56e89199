package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"figure-studio/models"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// maxSnapshotSize caps listing downloads; the largest mirror dump is a few MB
const maxSnapshotSize = 32 * 1024 * 1024

// DriveService handles Google Drive API operations for listing snapshots
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListSnapshots lists the JSON listing dumps of a folder, newest first
func (ds *DriveService) ListSnapshots(ctx context.Context, folderID string) ([]models.DriveSnapshot, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			OrderBy("modifiedTime desc").
			Fields("nextPageToken, files(id, name, mimeType, modifiedTime)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	var snapshots []models.DriveSnapshot
	for _, file := range allFiles {
		isJSON := strings.EqualFold(file.MimeType, "application/json") ||
			strings.HasSuffix(strings.ToLower(file.Name), ".json")
		if !isJSON {
			continue
		}
		snapshots = append(snapshots, models.DriveSnapshot{
			FileID:     file.Id,
			Name:       file.Name,
			ModifiedAt: file.ModifiedTime,
		})
	}

	log.Printf("📂 Drive: %d listing snapshots in folder %s", len(snapshots), folderID)
	return snapshots, nil
}

// DownloadFile downloads the raw content of a Drive file
func (ds *DriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
