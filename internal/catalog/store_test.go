package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gruhalankar/roomdecor/internal/models"
)

func testStore(t *testing.T, contents string) *Store {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "furniture.json")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("failed to write test catalog: %v", err)
		}
	}

	store := New(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return store
}

const sampleCatalog = `[
  {
    "id": "sofa_001",
    "name": "Modern Minimalist Sofa",
    "category": "living",
    "style": "minimal",
    "model_url": "living/sofa_001.glb",
    "available_colors": ["#FFFFFF", "#808080"],
    "dimensions": {"width": 2.4, "depth": 1.2, "height": 0.8},
    "tags": ["sofa", "seating"]
  },
  {
    "id": "table_001",
    "name": "Scandinavian Coffee Table",
    "category": "living",
    "style": "scandinavian",
    "model_url": "https://cdn.example.com/table_001.glb",
    "available_colors": ["#D4A574"],
    "dimensions": {"width": 1.2, "depth": 0.6, "height": 0.45}
  },
  {
    "id": "bed_001",
    "name": "Platform Bed",
    "category": "bedroom",
    "style": "minimal",
    "available_colors": ["#2C2C2C"],
    "dimensions": {"width": 1.8, "depth": 2.1, "height": 0.4}
  }
]`

func TestStoreLoadAndList(t *testing.T) {
	store := testStore(t, sampleCatalog)

	all := store.List(Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}

	// Relative model paths get the static mount prefix; absolute URLs stay.
	if all[0].ModelURL != "/static/models/living/sofa_001.glb" {
		t.Errorf("unexpected model URL: %q", all[0].ModelURL)
	}
	if all[1].ModelURL != "https://cdn.example.com/table_001.glb" {
		t.Errorf("absolute model URL was rewritten: %q", all[1].ModelURL)
	}
}

func TestStoreListFilters(t *testing.T) {
	store := testStore(t, sampleCatalog)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"by category", Filter{Category: "living"}, 2},
		{"by style", Filter{Style: "minimal"}, 2},
		{"by both", Filter{Category: "living", Style: "minimal"}, 1},
		{"no match", Filter{Category: "garage"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.List(tt.filter)
			if len(got) != tt.want {
				t.Errorf("filter %+v: got %d items, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestStoreGetAndBatch(t *testing.T) {
	store := testStore(t, sampleCatalog)

	item, ok := store.Get("bed_001")
	if !ok || item.Name != "Platform Bed" {
		t.Errorf("Get(bed_001) = %+v, %v", item, ok)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get returned a missing item")
	}

	batch := store.GetBatch([]string{"bed_001", "sofa_001", "missing"})
	if len(batch) != 2 {
		t.Fatalf("expected 2 items from batch, got %d", len(batch))
	}
	// Batch preserves catalog order, not request order.
	if batch[0].ID != "sofa_001" || batch[1].ID != "bed_001" {
		t.Errorf("batch order mismatch: %q, %q", batch[0].ID, batch[1].ID)
	}
}

func TestStoreListReturnsCopies(t *testing.T) {
	store := testStore(t, sampleCatalog)

	first := store.List(Filter{})
	first[0].Name = "mutated"
	first[0].AvailableColors[0] = "#000000"

	second := store.List(Filter{})
	if second[0].Name != "Modern Minimalist Sofa" {
		t.Error("List leaked a mutable reference to the stored item")
	}
	if second[0].AvailableColors[0] != "#FFFFFF" {
		t.Error("List leaked the stored color slice")
	}
}

func TestStoreMutations(t *testing.T) {
	store := testStore(t, sampleCatalog)

	newItem := models.CatalogItem{
		ID:       "lamp_001",
		Name:     "Arc Floor Lamp",
		Category: "living",
		Style:    "modern",
		Dimensions: models.Dimensions{
			Width: 0.4, Depth: 0.4, Height: 1.8,
		},
	}
	if err := store.Create(newItem); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Create(newItem); err == nil {
		t.Error("expected duplicate Create to fail")
	}

	newItem.Name = "Arc Floor Lamp v2"
	if err := store.Update("lamp_001", newItem); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if item, _ := store.Get("lamp_001"); item.Name != "Arc Floor Lamp v2" {
		t.Errorf("Update not applied: %q", item.Name)
	}

	if err := store.Delete("lamp_001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := store.Get("lamp_001"); ok {
		t.Error("item still present after Delete")
	}

	// Mutations persist across a reload.
	if err := store.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if store.Count() != 3 {
		t.Errorf("expected 3 items after reload, got %d", store.Count())
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("missing catalog file should not error: %v", err)
	}
	if store.Count() != 0 {
		t.Errorf("expected empty catalog, got %d items", store.Count())
	}
}
