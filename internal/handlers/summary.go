package handlers

import (
	"fmt"

	"github.com/gruhalankar/roomdecor/internal/models"
)

func recommendationSummary(profile models.RoomProfile, matches int) string {
	if profile.Style != "" {
		return fmt.Sprintf("We found %d pieces perfect for your %s %s room",
			matches, profile.Style, profile.RoomType)
	}
	return fmt.Sprintf("We found %d matching furniture pieces for your room", matches)
}
