package vision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gruhalankar/roomdecor/internal/openai"
)

// RedesignPreferences carries the user's wishes for a generated redesign.
type RedesignPreferences struct {
	Style          string
	ColorScheme    string
	FurnitureFocus string
}

// RedesignResult holds generated room renders and the prompt behind them.
type RedesignResult struct {
	GeneratedImages []string `json:"generated_images"`
	Style           string   `json:"style"`
	PromptUsed      string   `json:"prompt_used"`
}

// RedesignRoom generates redesigned room renders for the given
// preferences. Image generation runs on DALL-E regardless of the vision
// provider, since the other backends have no image API.
func (s *Service) RedesignRoom(ctx context.Context, prefs RedesignPreferences) (RedesignResult, error) {
	if prefs.Style == "" {
		prefs.Style = "modern"
	}
	if prefs.ColorScheme == "" {
		prefs.ColorScheme = "neutral"
	}
	if prefs.FurnitureFocus == "" {
		prefs.FurnitureFocus = "overall ambiance"
	}

	prompt := buildRedesignPrompt(prefs)

	urls, err := openai.New().GenerateImages(ctx, prompt, 1)
	if err != nil {
		return RedesignResult{}, fmt.Errorf("room redesign failed: %w", err)
	}

	slog.Info("Generated redesign images", "count", len(urls), "style", prefs.Style)
	return RedesignResult{
		GeneratedImages: urls,
		Style:           prefs.Style,
		PromptUsed:      prompt,
	}, nil
}

func buildRedesignPrompt(prefs RedesignPreferences) string {
	return fmt.Sprintf(`Interior design: Transform this room into a %s style interior with %s color palette.
Focus on %s.
Create a cohesive, well-lit space with harmonious furniture placement.
Keep the room layout recognizable but enhance with tasteful %s furniture and decor.
Photorealistic quality, professional interior photography.`,
		prefs.Style, prefs.ColorScheme, prefs.FurnitureFocus, prefs.Style)
}
