package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gruhalankar/roomdecor/internal/models"
)

const (
	maxTips      = 4
	tipsItemsCap = 5
)

// ArrangementTips asks the configured provider for room-specific
// furniture arrangement tips based on the profile and the top scored
// items. Falls back to general guidance when the call fails.
func (s *Service) ArrangementTips(ctx context.Context, profile models.RoomProfile, furniture []models.ScoredItem) []string {
	prompt := buildTipsPrompt(profile, furniture)

	raw, err := s.callProvider(ctx, prompt, nil, "")
	if err != nil {
		slog.Warn("Arrangement tips generation failed, using fallback", "err", err)
		return fallbackTips()
	}

	tips := parseTips(raw)
	if len(tips) == 0 {
		return fallbackTips()
	}
	return tips
}

func buildTipsPrompt(profile models.RoomProfile, furniture []models.ScoredItem) string {
	items := furniture
	if len(items) > tipsItemsCap {
		items = items[:tipsItemsCap]
	}

	var furnitureList strings.Builder
	for _, f := range items {
		fmt.Fprintf(&furnitureList, "- %s (%s, %s)\n", f.Item.Name, f.Item.Category, f.Item.Style)
	}

	return fmt.Sprintf(`Based on this room analysis:
Room Type: %s
Style: %s
Space Size: %s
Colors: %s

And these furniture options:
%s
Provide 3-4 specific, actionable tips for arranging furniture in this room. Each tip should be 1-2 sentences. Focus on:
1. Space utilization
2. Flow and movement
3. Focal points
4. Color coordination

Keep it practical and friendly.`,
		profile.RoomType, profile.Style, profile.SpaceSize,
		strings.Join(profile.Colors, ", "), furnitureList.String())
}

// parseTips splits the model response into individual tips, stripping
// bullet markers and blank lines.
func parseTips(raw string) []string {
	var tips []string
	for _, line := range strings.Split(raw, "\n") {
		tip := strings.TrimSpace(strings.Trim(line, "-* \t"))
		if tip == "" {
			continue
		}
		tips = append(tips, tip)
		if len(tips) == maxTips {
			break
		}
	}
	return tips
}

func fallbackTips() []string {
	return []string{
		"Consider the natural flow of movement in your space",
		"Group furniture to create conversation areas",
		"Leave adequate space for walking between pieces",
		"Balance larger pieces with smaller accent furniture",
	}
}
