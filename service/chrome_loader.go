package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// ChromeImageLoader probes candidates in a headless browser. It reports success
// the same way an <img> tag would: the navigation must answer 200 and the
// rendered image must have a natural width.
type ChromeImageLoader struct {
	timeout time.Duration

	mu            sync.Mutex
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// NewChromeImageLoader starts a headless browser shared by all probes
func NewChromeImageLoader(chromePath string, timeout time.Duration) (*ChromeImageLoader, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("blink-settings", "imagesEnabled=true"),
	)
	if path := detectChromePath(chromePath); path != "" {
		log.Printf("🔍 Using Chrome at: %s", path)
		opts = append(opts, chromedp.ExecPath(path))
	} else {
		log.Printf("⚠️  Chrome path not found, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// First Run starts the browser
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	return &ChromeImageLoader{
		timeout:       timeout,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}, nil
}

// Load implements ImageLoader, opening one tab per probe
func (l *ChromeImageLoader) Load(ctx context.Context, url string) error {
	l.mu.Lock()
	browserCtx := l.browserCtx
	l.mu.Unlock()
	if browserCtx == nil {
		return fmt.Errorf("chrome loader is closed")
	}

	tabCtx, tabCancel := chromedp.NewContext(browserCtx)
	defer tabCancel()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithTimeout(tabCtx, l.timeout)
		defer cancel()
	}
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	resp, err := chromedp.RunResponse(tabCtx, chromedp.Navigate(url))
	if err != nil {
		return fmt.Errorf("failed to navigate to image: %w", err)
	}
	if status := responseStatus(resp); status != 200 {
		return fmt.Errorf("image endpoint returned status %d", status)
	}

	var width int
	if err := chromedp.Run(tabCtx,
		chromedp.Evaluate(`(document.images.length > 0 && document.images[0].naturalWidth) || 0`, &width),
	); err != nil {
		return fmt.Errorf("failed to inspect image: %w", err)
	}
	if width == 0 {
		return fmt.Errorf("image did not render")
	}
	return nil
}

func responseStatus(resp *network.Response) int64 {
	if resp == nil {
		return 0
	}
	return resp.Status
}

// Close shuts the browser down
func (l *ChromeImageLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.browserCtx == nil {
		return
	}
	l.browserCancel()
	l.allocCancel()
	l.browserCtx = nil
}
