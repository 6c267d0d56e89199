package service

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// Size settings (max dimension)
	maxSizeIcon  = 64
	maxSizeLarge = 128
)

// ThumbnailDiskCache keeps normalized thumbnail PNGs on disk, keyed by source URL
type ThumbnailDiskCache struct {
	dir string
}

// NewThumbnailDiskCache creates the cache, making sure the directory exists
func NewThumbnailDiskCache(dir string) (*ThumbnailDiskCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &ThumbnailDiskCache{dir: dir}, nil
}

// Path returns the cache file path for a source URL and size
func (c *ThumbnailDiskCache) Path(sourceURL, size string) string {
	sum := sha1.Sum([]byte(sourceURL))
	filename := fmt.Sprintf("thumb_%s_%s.png", hex.EncodeToString(sum[:]), size)
	return filepath.Join(c.dir, filename)
}

// Read returns a cached thumbnail
func (c *ThumbnailDiskCache) Read(sourceURL, size string) ([]byte, bool) {
	data, err := os.ReadFile(c.Path(sourceURL, size))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Save stores a thumbnail
func (c *ThumbnailDiskCache) Save(sourceURL, size string, imageData []byte) error {
	cachePath := c.Path(sourceURL, size)
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Printf("💾 Thumbnail cached: %s", cachePath)
	return nil
}

// OptimizeThumbnail normalizes a thumbnail to PNG within the size's bounding box.
// Sprites are pixel art, so scaling uses nearest neighbour and keeps transparency.
// size: "icon" or "large"
func OptimizeThumbnail(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var maxDim int
	switch size {
	case "icon":
		maxDim = maxSizeIcon
	case "large":
		maxDim = maxSizeLarge
	default:
		maxDim = maxSizeIcon
		log.Printf("⚠️  Unknown size '%s', defaulting to icon", size)
	}

	bounds := img.Bounds()
	var resized image.Image = img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		resized = imaging.Fit(img, maxDim, maxDim, imaging.NearestNeighbor)
		log.Printf("🔄 Resizing %s thumbnail: %dx%d -> %dx%d", format, bounds.Dx(), bounds.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}
