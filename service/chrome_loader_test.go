package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChromePathPrefersConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o755))

	assert.Equal(t, path, detectChromePath(path))
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, int64(0), responseStatus(nil))
	assert.Equal(t, int64(404), responseStatus(&network.Response{Status: 404}))
}

func TestChromeImageLoader(t *testing.T) {
	if testing.Short() || detectChromePath(os.Getenv("CHROME_PATH")) == "" {
		t.Skip("chrome not available")
	}

	pngData := testPNG(t, 8, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(pngData)
		case "/page.png":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html><body>gone</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	loader, err := NewChromeImageLoader(os.Getenv("CHROME_PATH"), 10*time.Second)
	require.NoError(t, err)
	defer loader.Close()

	ctx := context.Background()
	assert.NoError(t, loader.Load(ctx, server.URL+"/ok.png"))
	assert.Error(t, loader.Load(ctx, server.URL+"/page.png"))
	assert.Error(t, loader.Load(ctx, server.URL+"/missing.png"))

	loader.Close()
	assert.Error(t, loader.Load(ctx, server.URL+"/ok.png"))
}
