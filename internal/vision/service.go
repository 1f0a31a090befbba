// Package vision turns room photos into structured profiles and
// furniture suggestions by calling vision-capable LLM providers.
package vision

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gruhalankar/roomdecor/internal/gemini"
	"github.com/gruhalankar/roomdecor/internal/models"
	"github.com/gruhalankar/roomdecor/internal/ollama"
	"github.com/gruhalankar/roomdecor/internal/openai"
	"github.com/gruhalankar/roomdecor/internal/providers"
	"github.com/gruhalankar/roomdecor/internal/utils"
	"golang.org/x/time/rate"
)

const (
	maxRetries     = 3
	callTimeout    = 60 * time.Second
	analysisTemp   = 0.1
	defaultGemini  = "models/gemini-flash-latest"
	defaultOpenAI  = "gpt-4o"
	defaultOllama  = "llama3.2-vision"
	defaultBackend = "gemini"
)

// Service performs room image analysis through a configured provider.
type Service struct {
	cache *Cache

	// Rate limiter shared across requests so parallel uploads do not
	// hammer the vision API.
	limiter *rate.Limiter
}

// NewService creates the vision service, enabling the Redis cache when
// configured.
func NewService() *Service {
	return &Service{
		cache:   NewCacheFromEnv(),
		limiter: rate.NewLimiter(rate.Limit(3), 5),
	}
}

// AnalyzeRoom returns a structured profile of the room in the image.
func (s *Service) AnalyzeRoom(ctx context.Context, imageData []byte, imageMIME string) (models.RoomProfile, error) {
	imageHash := utils.CalculateDataMD5(imageData)
	if s.cache != nil {
		if profile, ok := s.cache.GetProfile(ctx, imageHash); ok {
			slog.Info("Room profile served from cache", "hash", imageHash)
			return profile, nil
		}
	}

	raw, err := s.callProvider(ctx, roomProfilePrompt, imageData, imageMIME)
	if err != nil {
		return models.RoomProfile{}, fmt.Errorf("room analysis failed: %w", err)
	}

	profile := ParseRoomProfile(raw)
	slog.Info("Room analysis complete", "room_type", profile.RoomType, "style", profile.Style)

	if s.cache != nil {
		s.cache.SetProfile(ctx, imageHash, profile)
	}
	return profile, nil
}

// SuggestFurniture returns AI furniture proposals plus room metadata for
// the image, to be reconciled against the catalog.
func (s *Service) SuggestFurniture(ctx context.Context, imageData []byte, imageMIME string) (models.RoomAnalysis, error) {
	imageHash := utils.CalculateDataMD5(imageData)
	if s.cache != nil {
		if analysis, ok := s.cache.GetAnalysis(ctx, imageHash); ok {
			slog.Info("Room analysis served from cache", "hash", imageHash)
			return analysis, nil
		}
	}

	raw, err := s.callProvider(ctx, furnitureSuggestionPrompt, imageData, imageMIME)
	if err != nil {
		return models.RoomAnalysis{}, fmt.Errorf("furniture suggestion failed: %w", err)
	}

	analysis, err := ParseRoomAnalysis(raw)
	if err != nil {
		return models.RoomAnalysis{}, err
	}
	slog.Info("Furniture suggestions generated",
		"room_type", analysis.RoomType, "suggestions", len(analysis.Recommendations))

	if s.cache != nil {
		s.cache.SetAnalysis(ctx, imageHash, analysis)
	}
	return analysis, nil
}

func (s *Service) callProvider(ctx context.Context, prompt string, imageData []byte, imageMIME string) (string, error) {
	providerName := os.Getenv("VISION_PROVIDER")
	if providerName == "" {
		providerName = defaultBackend
	}
	provider, model, err := newProvider(providerName)
	if err != nil {
		return "", err
	}

	config := providers.Config{
		Model:       model,
		Temperature: analysisTemp,
		Prompt:      prompt,
		ImageData:   imageData,
		ImageMIME:   imageMIME,
	}

	var raw string
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = s.limiter.Wait(ctx); err != nil {
			return "", err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, callTimeout)
		raw, err = provider.AnalyzeImage(attemptCtx, config)
		cancel()

		if err == nil {
			return raw, nil
		}

		slog.Warn("Vision call failed", "provider", providerName, "attempt", attempt, "err", err)
		if attempt < maxRetries {
			select {
			case <-time.After(time.Duration(attempt*3) * time.Second):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", fmt.Errorf("vision provider %s failed after %d attempts: %w", providerName, maxRetries, err)
}

// newProvider validates the provider name and resolves its model from
// the environment. Unknown names fail here, before any model lookup.
func newProvider(name string) (providers.Provider, string, error) {
	switch name {
	case "gemini":
		return gemini.New(), modelOr("GEMINI_MODEL", defaultGemini), nil
	case "openai":
		return openai.New(), modelOr("OPENAI_MODEL", defaultOpenAI), nil
	case "ollama":
		return ollama.New(), modelOr("OLLAMA_MODEL", defaultOllama), nil
	default:
		return nil, "", fmt.Errorf("unsupported vision provider: %s", name)
	}
}

func modelOr(envVar, fallback string) string {
	if model := os.Getenv(envVar); model != "" {
		return model
	}
	return fallback
}
