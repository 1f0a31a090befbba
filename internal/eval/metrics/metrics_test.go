package metrics

import (
	"math"
	"testing"

	"github.com/gruhalankar/roomdecor/internal/models"
)

func ranked(ids ...string) []models.ScoredItem {
	items := make([]models.ScoredItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.ScoredItem{Item: models.CatalogItem{ID: id}})
	}
	return items
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreRanking(t *testing.T) {
	tests := []struct {
		name       string
		ranked     []models.ScoredItem
		expected   []string
		hits       int
		precision  float64
		recall     float64
		reciprocal float64
	}{
		{
			name:       "perfect match at top",
			ranked:     ranked("sofa_001", "table_001"),
			expected:   []string{"sofa_001", "table_001"},
			hits:       2,
			precision:  1.0,
			recall:     1.0,
			reciprocal: 1.0,
		},
		{
			name:       "first hit at rank three",
			ranked:     ranked("lamp_001", "chair_001", "sofa_001"),
			expected:   []string{"sofa_001"},
			hits:       1,
			precision:  1.0 / 3.0,
			recall:     1.0,
			reciprocal: 1.0 / 3.0,
		},
		{
			name:       "no overlap",
			ranked:     ranked("lamp_001"),
			expected:   []string{"bed_001"},
			hits:       0,
			precision:  0,
			recall:     0,
			reciprocal: 0,
		},
		{
			name:       "empty ranking",
			ranked:     nil,
			expected:   []string{"bed_001"},
			hits:       0,
			precision:  0,
			recall:     0,
			reciprocal: 0,
		},
		{
			name:       "partial recall",
			ranked:     ranked("sofa_001", "lamp_001"),
			expected:   []string{"sofa_001", "table_001", "bed_001"},
			hits:       1,
			precision:  0.5,
			recall:     1.0 / 3.0,
			reciprocal: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRanking("room_1", tt.ranked, tt.expected)
			if got.Hits != tt.hits {
				t.Errorf("Hits = %d, want %d", got.Hits, tt.hits)
			}
			if !almostEqual(got.Precision, tt.precision) {
				t.Errorf("Precision = %v, want %v", got.Precision, tt.precision)
			}
			if !almostEqual(got.Recall, tt.recall) {
				t.Errorf("Recall = %v, want %v", got.Recall, tt.recall)
			}
			if !almostEqual(got.ReciprocalRank, tt.reciprocal) {
				t.Errorf("ReciprocalRank = %v, want %v", got.ReciprocalRank, tt.reciprocal)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	results := []RoomResult{
		{Precision: 1.0, Recall: 0.5, ReciprocalRank: 1.0},
		{Precision: 0.5, Recall: 1.0, ReciprocalRank: 0.5},
	}

	summary := Aggregate(results)
	if summary.Rooms != 2 {
		t.Errorf("Rooms = %d, want 2", summary.Rooms)
	}
	if !almostEqual(summary.MeanPrecision, 0.75) {
		t.Errorf("MeanPrecision = %v, want 0.75", summary.MeanPrecision)
	}
	if !almostEqual(summary.MeanRecall, 0.75) {
		t.Errorf("MeanRecall = %v, want 0.75", summary.MeanRecall)
	}
	if !almostEqual(summary.MRR, 0.75) {
		t.Errorf("MRR = %v, want 0.75", summary.MRR)
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)
	if summary.Rooms != 0 || summary.MeanPrecision != 0 || summary.MRR != 0 {
		t.Errorf("empty aggregate should be zero, got %+v", summary)
	}
}
