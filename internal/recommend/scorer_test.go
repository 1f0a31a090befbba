package recommend

import (
	"reflect"
	"testing"

	"github.com/gruhalankar/roomdecor/internal/models"
)

func catalogItem(id, category, style string, width, depth float64) models.CatalogItem {
	return models.CatalogItem{
		ID:       id,
		Name:     id,
		Category: category,
		Style:    style,
		Dimensions: models.Dimensions{
			Width:  width,
			Depth:  depth,
			Height: 0.8,
		},
	}
}

func TestScoreCatalog(t *testing.T) {
	tests := []struct {
		name       string
		profile    models.RoomProfile
		catalog    []models.CatalogItem
		wantIDs    []string
		wantScores []int
	}{
		{
			name: "full match scores 100",
			profile: models.RoomProfile{
				RoomType:  models.RoomLiving,
				Style:     "minimal",
				SpaceSize: models.SpaceSmall,
			},
			catalog: []models.CatalogItem{
				catalogItem("sofa_001", "living", "minimal", 1.2, 1.0),
			},
			wantIDs:    []string{"sofa_001"},
			wantScores: []int{100},
		},
		{
			name: "category mismatch drops below cutoff",
			profile: models.RoomProfile{
				RoomType:  models.RoomBedroom,
				Style:     "minimal",
				SpaceSize: models.SpaceMedium,
			},
			catalog: []models.CatalogItem{
				catalogItem("desk_001", "office", "minimal", 1.2, 0.6),
			},
			wantIDs:    nil,
			wantScores: nil,
		},
		{
			name: "unknown room type falls back to living set",
			profile: models.RoomProfile{
				RoomType:  models.RoomUnknown,
				SpaceSize: models.SpaceMedium,
			},
			catalog: []models.CatalogItem{
				catalogItem("sofa_001", "living", "modern", 2.4, 1.2),
				catalogItem("bed_001", "bedroom", "modern", 1.8, 2.0),
			},
			wantIDs:    []string{"sofa_001"},
			wantScores: []int{60},
		},
		{
			name: "large room rewards statement pieces",
			profile: models.RoomProfile{
				RoomType:  models.RoomLiving,
				SpaceSize: models.SpaceLarge,
			},
			catalog: []models.CatalogItem{
				catalogItem("sofa_big", "living", "modern", 2.6, 1.2),
				catalogItem("sofa_small", "living", "modern", 1.2, 0.9),
			},
			wantIDs:    []string{"sofa_big", "sofa_small"},
			wantScores: []int{70, 60},
		},
		{
			name: "ties keep catalog order",
			profile: models.RoomProfile{
				RoomType:  models.RoomDining,
				SpaceSize: models.SpaceMedium,
			},
			catalog: []models.CatalogItem{
				catalogItem("table_a", "dining", "modern", 1.6, 0.9),
				catalogItem("table_b", "dining", "rustic", 1.6, 0.9),
			},
			wantIDs:    []string{"table_a", "table_b"},
			wantScores: []int{60, 60},
		},
		{
			name:    "empty catalog returns empty result",
			profile: models.RoomProfile{RoomType: models.RoomLiving},
			catalog: nil,
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCatalog(tt.profile, tt.catalog)

			var gotIDs []string
			var gotScores []int
			for _, s := range got {
				gotIDs = append(gotIDs, s.Item.ID)
				gotScores = append(gotScores, s.Score)
			}

			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("item order mismatch: got %v, want %v", gotIDs, tt.wantIDs)
			}
			if tt.wantScores != nil && !reflect.DeepEqual(gotScores, tt.wantScores) {
				t.Errorf("scores mismatch: got %v, want %v", gotScores, tt.wantScores)
			}
		})
	}
}

func TestScoreCatalog_ReasonOrder(t *testing.T) {
	profile := models.RoomProfile{
		RoomType:  models.RoomLiving,
		Style:     "minimal",
		SpaceSize: models.SpaceSmall,
	}
	catalog := []models.CatalogItem{
		catalogItem("sofa_001", "living", "minimal", 1.2, 1.0),
	}

	got := ScoreCatalog(profile, catalog)
	if len(got) != 1 {
		t.Fatalf("expected 1 scored item, got %d", len(got))
	}

	wantReasons := []string{
		"Perfect for your living room",
		"Matches your minimal style",
		"Compact size fits small spaces",
	}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons mismatch:\ngot  %v\nwant %v", got[0].Reasons, wantReasons)
	}
}

func TestScoreCatalog_TopEightCutoff(t *testing.T) {
	profile := models.RoomProfile{
		RoomType:  models.RoomLiving,
		SpaceSize: models.SpaceMedium,
	}

	var catalog []models.CatalogItem
	for i := 0; i < 20; i++ {
		catalog = append(catalog, catalogItem(
			string(rune('a'+i)), "living", "modern", 1.5, 1.0))
	}

	got := ScoreCatalog(profile, catalog)
	if len(got) != 8 {
		t.Fatalf("expected at most 8 results, got %d", len(got))
	}

	// First eight catalog items win the all-ties ranking.
	for i, s := range got {
		if s.Item.ID != catalog[i].ID {
			t.Errorf("position %d: got %q, want %q", i, s.Item.ID, catalog[i].ID)
		}
		if s.Score < 50 {
			t.Errorf("item %q scored %d, below the 50 cutoff", s.Item.ID, s.Score)
		}
	}
}

func TestScoreCatalog_SortedNonIncreasing(t *testing.T) {
	profile := models.RoomProfile{
		RoomType:  models.RoomLiving,
		Style:     "modern",
		SpaceSize: models.SpaceSmall,
	}
	catalog := []models.CatalogItem{
		catalogItem("plain", "living", "rustic", 2.0, 2.0),
		catalogItem("styled", "living", "modern", 2.0, 2.0),
		catalogItem("compact", "living", "modern", 1.0, 1.0),
	}

	got := ScoreCatalog(profile, catalog)
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("results not sorted: score %d follows %d", got[i].Score, got[i-1].Score)
		}
	}
	if len(got) == 0 || got[0].Item.ID != "compact" {
		t.Errorf("expected compact styled item first, got %+v", got)
	}
}

func TestScoreCatalog_SizeFitAlwaysFiresOnce(t *testing.T) {
	sizes := []models.SpaceSize{
		models.SpaceSmall, models.SpaceMedium, models.SpaceLarge, models.SpaceUnknown,
	}
	sizeReasons := map[string]bool{
		"Compact size fits small spaces":   true,
		"Statement piece for larger rooms": true,
		"Versatile size for medium spaces": true,
	}

	for _, size := range sizes {
		profile := models.RoomProfile{RoomType: models.RoomLiving, SpaceSize: size}
		catalog := []models.CatalogItem{
			catalogItem("sofa_001", "living", "modern", 1.8, 1.8),
		}

		got := ScoreCatalog(profile, catalog)
		if len(got) != 1 {
			t.Fatalf("size %q: expected 1 result, got %d", size, len(got))
		}

		fired := 0
		for _, reason := range got[0].Reasons {
			if sizeReasons[reason] {
				fired++
			}
		}
		if fired != 1 {
			t.Errorf("size %q: %d size-fit reasons fired, want exactly 1 (%v)",
				size, fired, got[0].Reasons)
		}
	}
}

func TestScoreCatalog_SkipsMalformedItems(t *testing.T) {
	profile := models.RoomProfile{RoomType: models.RoomLiving, SpaceSize: models.SpaceMedium}
	catalog := []models.CatalogItem{
		{Name: "no id", Category: "living", Dimensions: models.Dimensions{Width: 1, Depth: 1, Height: 1}},
		{ID: "flat", Name: "flat", Category: "living"}, // zero dimensions
		catalogItem("ok", "living", "modern", 1.5, 1.0),
	}

	got := ScoreCatalog(profile, catalog)
	if len(got) != 1 || got[0].Item.ID != "ok" {
		t.Errorf("expected only the well-formed item, got %+v", got)
	}
}

func TestScoreCatalog_Deterministic(t *testing.T) {
	profile := models.RoomProfile{
		RoomType:  models.RoomOffice,
		Style:     "industrial",
		SpaceSize: models.SpaceLarge,
	}
	catalog := []models.CatalogItem{
		catalogItem("desk_001", "office", "industrial", 2.2, 0.9),
		catalogItem("chair_001", "office", "industrial", 0.6, 0.6),
		catalogItem("shelf_001", "study", "modern", 1.0, 0.4),
	}

	first := ScoreCatalog(profile, catalog)
	second := ScoreCatalog(profile, catalog)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat invocation differed:\nfirst  %+v\nsecond %+v", first, second)
	}
}
