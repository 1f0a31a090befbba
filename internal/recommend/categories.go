// Package recommend ranks catalog furniture against a room profile and
// reconciles AI furniture suggestions with concrete catalog assets.
//
// Both entry points are pure functions over the catalog snapshot they are
// handed: no shared state, no randomness, safe to call concurrently.
package recommend

import "github.com/gruhalankar/roomdecor/internal/models"

// categoryMap lists the catalog categories that suit each room type.
var categoryMap = map[models.RoomType][]string{
	models.RoomLiving:  {"living", "lounge"},
	models.RoomBedroom: {"bedroom", "bed"},
	models.RoomDining:  {"dining", "kitchen"},
	models.RoomOffice:  {"office", "study", "desk"},
}

// defaultColor stands in for catalog items with an empty color list.
// An empty list is a data problem in the catalog, not a reason to fail
// the whole recommendation.
const defaultColor = "#808080"

// categoriesFor returns the acceptable categories for a room type.
// Unknown room types fall back to the living-room set.
func categoriesFor(roomType models.RoomType) []string {
	if cats, ok := categoryMap[roomType]; ok {
		return cats
	}
	return categoryMap[models.RoomLiving]
}

// pickColor selects the color to render a matched asset in: always the
// first available color, or neutral gray when the item has none.
func pickColor(colors []string) string {
	if len(colors) == 0 {
		return defaultColor
	}
	return colors[0]
}
