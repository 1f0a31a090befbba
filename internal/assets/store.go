// Package assets manages the locally stored 3D model and thumbnail files
// that back the furniture catalog.
package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var allowedModelExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ModelInfo describes one stored 3D model file.
type ModelInfo struct {
	Filename string  `json:"filename"`
	Path     string  `json:"path"`
	SizeMB   float64 `json:"size_mb"`
	Category string  `json:"category"`
}

// Store reads and writes model/thumbnail files under a static directory.
type Store struct {
	staticDir string
}

func NewStore(staticDir string) *Store {
	if staticDir == "" {
		staticDir = "static"
	}
	return &Store{staticDir: staticDir}
}

// ModelsDir is where the 3D asset pack lives.
func (s *Store) ModelsDir() string {
	return filepath.Join(s.staticDir, "models")
}

// ListModels walks the models directory and returns every stored model.
func (s *Store) ListModels() ([]ModelInfo, error) {
	modelsDir := s.ModelsDir()
	if _, err := os.Stat(modelsDir); os.IsNotExist(err) {
		return []ModelInfo{}, nil
	}

	var result []ModelInfo
	err := filepath.WalkDir(modelsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The asset pack may be a git checkout; skip its metadata.
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !allowedModelExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(s.staticDir, path)
		if err != nil {
			return err
		}
		category := filepath.Dir(strings.TrimPrefix(relPath, "models/"))
		if category == "." {
			category = "uncategorized"
		}

		result = append(result, ModelInfo{
			Filename: d.Name(),
			Path:     "/static/" + filepath.ToSlash(relPath),
			SizeMB:   roundMB(info.Size()),
			Category: category,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	if result == nil {
		result = []ModelInfo{}
	}
	return result, nil
}

// SaveModel stores an uploaded 3D model under its category directory.
func (s *Store) SaveModel(filename, category string, data []byte) (ModelInfo, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedModelExtensions[ext] {
		return ModelInfo{}, fmt.Errorf("invalid model file type %q", ext)
	}
	if category == "" {
		category = "uncategorized"
	}

	saveDir := filepath.Join(s.ModelsDir(), category)
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return ModelInfo{}, fmt.Errorf("failed to create model directory: %w", err)
	}

	path := filepath.Join(saveDir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ModelInfo{}, fmt.Errorf("failed to save model: %w", err)
	}

	info := ModelInfo{
		Filename: filepath.Base(filename),
		Path:     "/static/models/" + category + "/" + filepath.Base(filename),
		SizeMB:   roundMB(int64(len(data))),
		Category: category,
	}
	slog.Info("Model uploaded", "filename", info.Filename, "size_mb", info.SizeMB, "path", info.Path)
	return info, nil
}

// SaveThumbnail stores an uploaded thumbnail image and returns its URL.
func (s *Store) SaveThumbnail(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("invalid thumbnail file type %q", ext)
	}

	saveDir := filepath.Join(s.staticDir, "thumbnails")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	path := filepath.Join(saveDir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	url := "/static/thumbnails/" + filepath.Base(filename)
	slog.Info("Thumbnail uploaded", "filename", filepath.Base(filename), "path", url)
	return url, nil
}

func roundMB(size int64) float64 {
	mb := float64(size) / (1024 * 1024)
	return float64(int(mb*100+0.5)) / 100
}
