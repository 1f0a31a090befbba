package models

import (
	"strings"
	"time"
)

// RoomType is the detected primary function of a room.
type RoomType string

const (
	RoomLiving  RoomType = "living"
	RoomBedroom RoomType = "bedroom"
	RoomDining  RoomType = "dining"
	RoomOffice  RoomType = "office"
	RoomUnknown RoomType = ""
)

// ParseRoomType maps free-form vision output onto a known room type.
// Anything unrecognized collapses to RoomUnknown, which downstream code
// treats as a living room.
func ParseRoomType(s string) RoomType {
	switch RoomType(strings.ToLower(strings.TrimSpace(s))) {
	case RoomLiving, RoomBedroom, RoomDining, RoomOffice:
		return RoomType(strings.ToLower(strings.TrimSpace(s)))
	}
	// The vision models occasionally answer "living_room" etc.
	normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_room")
	switch RoomType(normalized) {
	case RoomLiving, RoomBedroom, RoomDining, RoomOffice:
		return RoomType(normalized)
	}
	return RoomUnknown
}

// SpaceSize is the assessed amount of free space in a room.
type SpaceSize string

const (
	SpaceSmall   SpaceSize = "small"
	SpaceMedium  SpaceSize = "medium"
	SpaceLarge   SpaceSize = "large"
	SpaceUnknown SpaceSize = ""
)

// ParseSpaceSize maps free-form vision output onto a known space size.
func ParseSpaceSize(s string) SpaceSize {
	switch SpaceSize(strings.ToLower(strings.TrimSpace(s))) {
	case SpaceSmall, SpaceMedium, SpaceLarge:
		return SpaceSize(strings.ToLower(strings.TrimSpace(s)))
	}
	return SpaceUnknown
}

// Dimensions holds the bounding box of a furniture piece in meters.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Depth  float64 `json:"depth" yaml:"depth"`
	Height float64 `json:"height" yaml:"height"`
}

// CatalogItem is a placeable furniture asset. Items are owned by the
// catalog store; the recommendation engine only ever reads them.
type CatalogItem struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Category        string     `json:"category" yaml:"category"`
	Style           string     `json:"style" yaml:"style"`
	ModelURL        string     `json:"model_url" yaml:"model_url"`
	ThumbnailURL    string     `json:"thumbnail_url" yaml:"thumbnail_url"`
	AvailableColors []string   `json:"available_colors" yaml:"available_colors"`
	Dimensions      Dimensions `json:"dimensions" yaml:"dimensions"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty"`
	Tags            []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// RoomProfile is the structured description of a room derived from one
// analyzed image. Only RoomType is required; the engine defaults the rest.
type RoomProfile struct {
	RoomType          RoomType  `json:"room_type"`
	Style             string    `json:"style"`
	Colors            []string  `json:"colors"`
	SpaceSize         SpaceSize `json:"space_size"`
	Lighting          string    `json:"lighting"`
	ExistingFurniture []string  `json:"existing_furniture"`
	ColorScheme       string    `json:"color_scheme"`
	Suggestions       string    `json:"suggestions,omitempty"`
}

// FurnitureSuggestion is one AI-proposed furniture concept, not yet tied
// to a concrete catalog item.
type FurnitureSuggestion struct {
	FurnitureType  string `json:"furniture_type"`
	Category       string `json:"category"`
	PreferredStyle string `json:"preferred_style,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// EmptySpace describes an area of the room that could take new furniture.
type EmptySpace struct {
	Location    string   `json:"location"`
	SuitableFor []string `json:"suitable_for"`
}

// RoomAnalysis is the raw result of the suggestion-oriented vision call.
type RoomAnalysis struct {
	RoomType        RoomType              `json:"room_type"`
	Style           string                `json:"style"`
	EmptySpaces     []EmptySpace          `json:"empty_spaces"`
	Recommendations []FurnitureSuggestion `json:"recommendations"`
	ColorScheme     []string              `json:"color_scheme"`
	Confidence      float64               `json:"confidence"`
}

// ScoredItem is a catalog item ranked against a room profile. Never
// persisted; recomputed per request.
type ScoredItem struct {
	Item    CatalogItem `json:"item"`
	Score   int         `json:"recommendation_score"`
	Reasons []string    `json:"reasons"`
}

// MatchedAsset is the concrete catalog item chosen to fulfill one
// furniture suggestion.
type MatchedAsset struct {
	AssetID    string  `json:"asset_id"`
	Color      string  `json:"color"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// AnalysisRecord stores one completed room analysis so clients can
// re-fetch results without re-running the vision call.
type AnalysisRecord struct {
	ID        string         `json:"id"`
	ImageName string         `json:"image_name"`
	ImageURL  string         `json:"image_url"`
	Profile   RoomProfile    `json:"profile"`
	Assets    []MatchedAsset `json:"assets"`
	Furniture []ScoredItem   `json:"furniture"`
	CreatedAt time.Time      `json:"created_at"`
}
