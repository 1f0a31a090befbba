package recommend

import (
	"strings"

	"github.com/gruhalankar/roomdecor/internal/models"
)

const (
	styleMatchConfidence = 0.8
	baseConfidence       = 0.6
)

// ReconcileSuggestions maps each AI furniture suggestion onto at most one
// catalog item. Selection is first-match-wins in catalog order: the first
// item whose name or tags contain the furniture type AND whose category
// equals the suggested category is taken, without comparing alternatives.
// Suggestions with no match are dropped, not errors.
func ReconcileSuggestions(suggestions []models.FurnitureSuggestion, catalog []models.CatalogItem) []models.MatchedAsset {
	matched := make([]models.MatchedAsset, 0, len(suggestions))

	for _, suggestion := range suggestions {
		furnitureType := strings.ToLower(strings.TrimSpace(suggestion.FurnitureType))
		category := strings.ToLower(strings.TrimSpace(suggestion.Category))
		style := strings.ToLower(strings.TrimSpace(suggestion.PreferredStyle))

		for _, item := range catalog {
			if item.ID == "" {
				continue
			}

			typeMatch := strings.Contains(strings.ToLower(item.Name), furnitureType) ||
				tagMatch(item.Tags, furnitureType)
			categoryMatch := category == strings.ToLower(item.Category)
			if !typeMatch || !categoryMatch {
				continue
			}

			// An empty style preference counts as a style match.
			styleMatch := style == "" || style == strings.ToLower(item.Style)
			confidence := baseConfidence
			if styleMatch {
				confidence = styleMatchConfidence
			}

			matched = append(matched, models.MatchedAsset{
				AssetID:    item.ID,
				Color:      pickColor(item.AvailableColors),
				Reason:     suggestion.Reason,
				Confidence: confidence,
			})
			break
		}
	}

	return matched
}

func tagMatch(tags []string, furnitureType string) bool {
	for _, tag := range tags {
		if tag == furnitureType {
			return true
		}
	}
	return false
}
