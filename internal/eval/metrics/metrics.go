// Package metrics scores ranked recommendation lists against labeled
// expectations.
package metrics

import "github.com/gruhalankar/roomdecor/internal/models"

// RoomResult holds the ranking quality numbers for one labeled room.
type RoomResult struct {
	RoomID         string
	ExpectedCount  int
	ReturnedCount  int
	Hits           int
	Precision      float64
	Recall         float64
	ReciprocalRank float64
}

// Summary aggregates results across a whole evaluation run.
type Summary struct {
	Rooms         int
	MeanPrecision float64
	MeanRecall    float64
	MRR           float64
}

// ScoreRanking compares a ranked recommendation list to the expected
// item ids for one room.
func ScoreRanking(roomID string, ranked []models.ScoredItem, expectedIDs []string) RoomResult {
	expected := make(map[string]bool, len(expectedIDs))
	for _, id := range expectedIDs {
		expected[id] = true
	}

	result := RoomResult{
		RoomID:        roomID,
		ExpectedCount: len(expectedIDs),
		ReturnedCount: len(ranked),
	}

	for rank, item := range ranked {
		if !expected[item.Item.ID] {
			continue
		}
		result.Hits++
		if result.ReciprocalRank == 0 {
			result.ReciprocalRank = 1.0 / float64(rank+1)
		}
	}

	if result.ReturnedCount > 0 {
		result.Precision = float64(result.Hits) / float64(result.ReturnedCount)
	}
	if result.ExpectedCount > 0 {
		result.Recall = float64(result.Hits) / float64(result.ExpectedCount)
	}
	return result
}

// Aggregate computes run-level means over per-room results.
func Aggregate(results []RoomResult) Summary {
	summary := Summary{Rooms: len(results)}
	if len(results) == 0 {
		return summary
	}

	for _, r := range results {
		summary.MeanPrecision += r.Precision
		summary.MeanRecall += r.Recall
		summary.MRR += r.ReciprocalRank
	}

	n := float64(len(results))
	summary.MeanPrecision /= n
	summary.MeanRecall /= n
	summary.MRR /= n
	return summary
}
