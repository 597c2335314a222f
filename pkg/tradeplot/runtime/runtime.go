// Package runtime locates the plotly.js bundle embedded into generated documents.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

const (
	// Version is the plotly.js release the generated documents target.
	Version = "2.35.2"
	// DefaultPath is where the bundle is looked up when no path is configured.
	DefaultPath = "assets/plotly.min.js"
	// DefaultCDNURL is the pinned bundle location on the plotly CDN.
	DefaultCDNURL = "https://cdn.plot.ly/plotly-" + Version + ".min.js"
)

// ErrBundleNotFound indicates the bundle file does not exist.
var ErrBundleNotFound = errors.New("plotly.js bundle not found")

// ErrEmptyBundle indicates the bundle file or download has no content.
var ErrEmptyBundle = errors.New("plotly.js bundle is empty")

// Load reads the bundle at path.
func Load(path string) ([]byte, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run `tradeplot fetch-runtime`)", ErrBundleNotFound, path)
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBundle, path)
	}
	return data, nil
}

// Fetch downloads the bundle from url into path, creating parent directories.
// The file is replaced only after the download completes.
func Fetch(ctx context.Context, client *http.Client, url, path string) (int64, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultCDNURL
	}
	if path == "" {
		path = DefaultPath
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".plotly-*.js")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			slog.Debug("runtime temp cleanup failed", "path", tmp.Name(), "error", err)
		}
	}()

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyBundle, url)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	slog.Info("plotly.js bundle saved", "url", url, "path", path, "bytes", n)
	return n, nil
}
