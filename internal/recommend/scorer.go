package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gruhalankar/roomdecor/internal/models"
)

const (
	categoryPoints  = 50
	stylePoints     = 30
	sizeFitPoints   = 20
	sizeNeutral     = 10
	minScore        = 50
	maxRecommended  = 8
	compactMaxMeter = 1.5
	statementMeter  = 2.0
)

// ScoreCatalog ranks every catalog item against the room profile and
// returns the top matches, best first. Ties keep catalog order. At most
// maxRecommended items are returned and every returned item scored at
// least minScore; an empty catalog yields an empty slice.
func ScoreCatalog(profile models.RoomProfile, catalog []models.CatalogItem) []models.ScoredItem {
	roomType := profile.RoomType
	if roomType == models.RoomUnknown {
		roomType = models.RoomLiving
	}
	validCategories := categoriesFor(roomType)
	style := strings.ToLower(strings.TrimSpace(profile.Style))

	var scored []models.ScoredItem
	for _, item := range catalog {
		if !scorable(item) {
			continue
		}

		score := 0
		var reasons []string

		// Category match carries the most weight: an item that does not
		// suit the room type never clears the minScore cutoff on its own.
		itemCategory := strings.ToLower(item.Category)
		for _, cat := range validCategories {
			if strings.Contains(itemCategory, cat) {
				score += categoryPoints
				reasons = append(reasons, fmt.Sprintf("Perfect for your %s room", roomType))
				break
			}
		}

		if style != "" && strings.Contains(strings.ToLower(item.Style), style) {
			score += stylePoints
			reasons = append(reasons, fmt.Sprintf("Matches your %s style", style))
		}

		sizeScore, sizeReason := sizeFit(profile.SpaceSize, item.Dimensions)
		score += sizeScore
		reasons = append(reasons, sizeReason)

		if score >= minScore {
			scored = append(scored, models.ScoredItem{
				Item:    item,
				Score:   score,
				Reasons: reasons,
			})
		}
	}

	// Stable: equal scores keep the catalog's own ordering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRecommended {
		scored = scored[:maxRecommended]
	}
	return scored
}

// sizeFit applies exactly one of the three size outcomes for an item.
func sizeFit(size models.SpaceSize, dims models.Dimensions) (int, string) {
	switch size {
	case models.SpaceSmall:
		if dims.Width < compactMaxMeter && dims.Depth < compactMaxMeter {
			return sizeFitPoints, "Compact size fits small spaces"
		}
	case models.SpaceLarge:
		if dims.Width > statementMeter || dims.Depth > statementMeter {
			return sizeFitPoints, "Statement piece for larger rooms"
		}
	}
	return sizeNeutral, "Versatile size for medium spaces"
}

// scorable filters out malformed catalog records so one bad row cannot
// break recommendations for the rest of the catalog.
func scorable(item models.CatalogItem) bool {
	if item.ID == "" {
		return false
	}
	d := item.Dimensions
	return d.Width > 0 && d.Depth > 0 && d.Height > 0
}
