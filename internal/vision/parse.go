package vision

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gruhalankar/roomdecor/internal/models"
)

// extractJSON pulls the first JSON object out of a model response,
// tolerating markdown code fences and surrounding prose.
func extractJSON(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

type roomProfileWire struct {
	RoomType          string   `json:"room_type"`
	Style             string   `json:"style"`
	Colors            []string `json:"colors"`
	SpaceSize         string   `json:"space_size"`
	Lighting          string   `json:"lighting"`
	ExistingFurniture []string `json:"existing_furniture"`
	ColorScheme       string   `json:"color_scheme"`
	Suggestions       string   `json:"suggestions"`
}

// ParseRoomProfile converts a raw vision response into a RoomProfile.
// A response without parseable JSON falls back to a generic profile so
// one flaky model answer does not fail the whole request; the raw text
// is kept in Suggestions for debugging.
func ParseRoomProfile(raw string) models.RoomProfile {
	jsonStr, ok := extractJSON(raw)
	if ok {
		var wire roomProfileWire
		if err := json.Unmarshal([]byte(jsonStr), &wire); err == nil {
			return models.RoomProfile{
				RoomType:          models.ParseRoomType(wire.RoomType),
				Style:             strings.ToLower(strings.TrimSpace(wire.Style)),
				Colors:            wire.Colors,
				SpaceSize:         models.ParseSpaceSize(wire.SpaceSize),
				Lighting:          wire.Lighting,
				ExistingFurniture: wire.ExistingFurniture,
				ColorScheme:       wire.ColorScheme,
				Suggestions:       wire.Suggestions,
			}
		}
		slog.Warn("Failed to parse room profile JSON, using fallback profile")
	} else {
		slog.Warn("No JSON object found in room analysis response, using fallback profile")
	}

	suggestions := raw
	if len(suggestions) > 200 {
		suggestions = suggestions[:200]
	}
	return models.RoomProfile{
		RoomType:    models.RoomLiving,
		Style:       "modern",
		Colors:      []string{"neutral"},
		SpaceSize:   models.SpaceMedium,
		Lighting:    "natural",
		ColorScheme: "neutral",
		Suggestions: suggestions,
	}
}

type roomAnalysisWire struct {
	RoomType        string              `json:"room_type"`
	Style           string              `json:"style"`
	EmptySpaces     []models.EmptySpace `json:"empty_spaces"`
	Recommendations []struct {
		FurnitureType  string `json:"furniture_type"`
		Category       string `json:"category"`
		PreferredStyle string `json:"preferred_style"`
		Reason         string `json:"reason"`
	} `json:"recommendations"`
	ColorScheme []string `json:"color_scheme"`
	Confidence  float64  `json:"confidence"`
}

// ParseRoomAnalysis converts a raw vision response into a RoomAnalysis.
// Unlike ParseRoomProfile there is no sensible fallback here: without
// parsed recommendations the reconciler has nothing to work with.
func ParseRoomAnalysis(raw string) (models.RoomAnalysis, error) {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return models.RoomAnalysis{}, fmt.Errorf("no JSON object found in vision response")
	}

	var wire roomAnalysisWire
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return models.RoomAnalysis{}, fmt.Errorf("failed to parse vision response: %w", err)
	}

	analysis := models.RoomAnalysis{
		RoomType:    models.ParseRoomType(wire.RoomType),
		Style:       strings.ToLower(strings.TrimSpace(wire.Style)),
		EmptySpaces: wire.EmptySpaces,
		ColorScheme: wire.ColorScheme,
		Confidence:  wire.Confidence,
	}
	for _, rec := range wire.Recommendations {
		analysis.Recommendations = append(analysis.Recommendations, models.FurnitureSuggestion{
			FurnitureType:  rec.FurnitureType,
			Category:       rec.Category,
			PreferredStyle: rec.PreferredStyle,
			Reason:         rec.Reason,
		})
	}
	return analysis, nil
}
