// Package catalog provides the furniture catalog store backed by a local
// JSON file. Reads hand out copies, so callers (including the
// recommendation engine) always operate on an immutable snapshot.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gruhalankar/roomdecor/internal/models"
)

const defaultDataFile = "data/furniture.json"

// modelURLPrefix is prepended to relative model paths stored on disk.
const modelURLPrefix = "/static/models/"

// Filter narrows a catalog listing. Zero-value fields are ignored.
type Filter struct {
	Category string
	Style    string
}

// Store is the file-backed furniture catalog.
type Store struct {
	path  string
	mu    sync.RWMutex
	items []models.CatalogItem
}

// New creates a catalog store reading from path, or from the CATALOG_FILE
// environment variable / default location when path is empty.
func New(path string) *Store {
	if path == "" {
		path = os.Getenv("CATALOG_FILE")
	}
	if path == "" {
		path = defaultDataFile
	}
	return &Store{path: path}
}

// Load reads the catalog file into memory. A missing file is not an
// error; the store starts empty and is populated by seeding or uploads.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.Warn("Catalog file not found, starting with empty catalog", "path", s.path)
		s.items = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	// Stored model paths are relative; serve them from the static mount.
	for i := range items {
		if items[i].ModelURL != "" && !strings.HasPrefix(items[i].ModelURL, "/") &&
			!strings.HasPrefix(items[i].ModelURL, "http") {
			items[i].ModelURL = modelURLPrefix + items[i].ModelURL
		}
	}

	s.items = items
	slog.Info("Catalog loaded", "path", s.path, "items", len(items))
	return nil
}

// List returns catalog items matching the filter, in file order.
func (s *Store) List(filter Filter) []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Style != "" && item.Style != filter.Style {
			continue
		}
		result = append(result, copyItem(item))
	}
	return result
}

// Get returns a single item by id.
func (s *Store) Get(id string) (models.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return copyItem(item), true
		}
	}
	return models.CatalogItem{}, false
}

// GetBatch returns the items whose ids appear in ids, in catalog order.
func (s *Store) GetBatch(ids []string) []models.CatalogItem {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.CatalogItem
	for _, item := range s.items {
		if wanted[item.ID] {
			result = append(result, copyItem(item))
		}
	}
	return result
}

// Count returns the number of catalog items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Create appends a new item and writes the catalog back to disk.
func (s *Store) Create(item models.CatalogItem) error {
	if item.ID == "" {
		return fmt.Errorf("catalog item requires an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return fmt.Errorf("catalog item %q already exists", item.ID)
		}
	}
	s.items = append(s.items, item)
	return s.saveLocked()
}

// Update replaces the item with the same id and writes back to disk.
func (s *Store) Update(id string, item models.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			s.items[i] = item
			return s.saveLocked()
		}
	}
	return fmt.Errorf("catalog item %q not found", id)
}

// Delete removes an item and writes back to disk.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("catalog item %q not found", id)
}

// Replace swaps the entire catalog contents (used by seeding).
func (s *Store) Replace(items []models.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

func copyItem(item models.CatalogItem) models.CatalogItem {
	out := item
	out.AvailableColors = append([]string(nil), item.AvailableColors...)
	out.Tags = append([]string(nil), item.Tags...)
	return out
}
