package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"
)

const maxThumbnailBytes = 4 * 1024 * 1024

// HTTPImageLoader loads a candidate with a plain GET and checks that the body
// decodes as an image. Mirrors answer missing assets with HTML 200 pages, so
// the status code alone is not enough.
type HTTPImageLoader struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTPImageLoader creates a loader with a per-request timeout
func NewHTTPImageLoader(timeout time.Duration) *HTTPImageLoader {
	return &HTTPImageLoader{
		Client:  &http.Client{},
		Timeout: timeout,
	}
}

// Load implements ImageLoader
func (l *HTTPImageLoader) Load(ctx context.Context, url string) error {
	_, _, err := l.Fetch(ctx, url)
	return err
}

// Fetch downloads and validates an image, returning its bytes and format
func (l *HTTPImageLoader) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "image/png,image/gif,image/*")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, "", fmt.Errorf("image has no pixels")
	}
	return data, format, nil
}
