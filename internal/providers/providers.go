package providers

import (
	"context"
)

// Config represents the configuration for a vision LLM call
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
	ImageData   []byte
	ImageMIME   string
}

// Provider defines the interface for a vision-capable LLM provider
type Provider interface {
	AnalyzeImage(ctx context.Context, config Config) (string, error)
}
