package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher downloads the published 3D asset pack into the local store so
// the server can run without a pre-populated models directory.
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new asset pack fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// manifest lists the files that make up an asset pack. It lives at
// <base-url>/manifest.json next to the files themselves.
type manifest struct {
	Files []manifestFile `json:"files"`
}

type manifestFile struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

// SyncAssetPack downloads every file in the pack manifest at baseURL into
// destDir, skipping files that already exist locally. It returns how many
// files were downloaded.
func (f *Fetcher) SyncAssetPack(ctx context.Context, baseURL, destDir string) (int, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	m, err := f.fetchManifest(ctx, baseURL+"/manifest.json")
	if err != nil {
		return 0, err
	}
	slog.Info("Fetched asset pack manifest", "files", len(m.Files))

	downloaded := 0
	for _, file := range m.Files {
		if strings.Contains(file.Path, "..") {
			slog.Warn("Skipping manifest entry with unsafe path", "path", file.Path)
			continue
		}

		destPath := filepath.Join(destDir, filepath.FromSlash(file.Path))
		if _, err := os.Stat(destPath); err == nil {
			continue
		}

		url := file.URL
		if url == "" {
			url = baseURL + "/" + file.Path
		}

		if err := f.downloadFile(ctx, url, destPath); err != nil {
			return downloaded, fmt.Errorf("failed to download %s: %w", file.Path, err)
		}
		downloaded++
	}

	slog.Info("Asset pack synced", "downloaded", downloaded, "total", len(m.Files))
	return downloaded, nil
}

func (f *Fetcher) fetchManifest(ctx context.Context, url string) (*manifest, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest fetch returned HTTP %d", resp.StatusCode)
	}

	var m manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

func (f *Fetcher) downloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(destPath)
		return err
	}
	return nil
}
