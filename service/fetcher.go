package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	drivePrefix     = "drive://"
	maxListingBytes = 32 * 1024 * 1024
)

// ErrNoSnapshot is returned when a Drive folder holds no listing dump
var ErrNoSnapshot = errors.New("no listing snapshot in drive folder")

// ListingFetcher retrieves the raw payload of one source listing
type ListingFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	Describe() string
}

// HTTPFetcher fetches a listing from an HTTP endpoint
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch performs a GET and returns the body
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Mirrors reject the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return data, nil
}

// Describe names the fetcher in logs
func (f *HTTPFetcher) Describe() string {
	return f.URL
}

// DriveSnapshotFetcher reads the newest JSON dump from a Google Drive folder
type DriveSnapshotFetcher struct {
	Drive    DriveServiceInterface
	FolderID string
}

// Fetch downloads the most recent snapshot of the folder
func (f *DriveSnapshotFetcher) Fetch(ctx context.Context) ([]byte, error) {
	snapshots, err := f.Drive.ListSnapshots(ctx, f.FolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshot
	}

	// RFC3339 timestamps sort lexically
	newest := snapshots[0]
	for _, s := range snapshots[1:] {
		if s.ModifiedAt > newest.ModifiedAt {
			newest = s
		}
	}
	return f.Drive.DownloadFile(ctx, newest.FileID)
}

// Describe names the fetcher in logs
func (f *DriveSnapshotFetcher) Describe() string {
	return drivePrefix + f.FolderID
}

// NewListingFetcher picks a fetcher for a configured location:
// "drive://<folderId>" reads Drive snapshots, anything else is fetched over HTTP.
// Returns nil when location is empty.
func NewListingFetcher(location string, drive DriveServiceInterface, client *http.Client) (ListingFetcher, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}
	if strings.HasPrefix(location, drivePrefix) {
		folderID := strings.TrimPrefix(location, drivePrefix)
		if folderID == "" {
			return nil, fmt.Errorf("drive location %q has no folder id", location)
		}
		if drive == nil {
			return nil, fmt.Errorf("drive location %q requires GOOGLE_APPLICATION_CREDENTIALS", location)
		}
		return &DriveSnapshotFetcher{Drive: drive, FolderID: folderID}, nil
	}
	return &HTTPFetcher{URL: location, Client: client}, nil
}
