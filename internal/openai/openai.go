package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gruhalankar/roomdecor/internal/providers"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI is a provider for OpenAI vision models
type OpenAI struct{}

// New returns a new OpenAI provider
func New() *OpenAI {
	return &OpenAI{}
}

// AnalyzeImage sends the image and prompt to an OpenAI vision model and
// returns the raw model response.
func (o *OpenAI) AnalyzeImage(ctx context.Context, config providers.Config) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	client := openai.NewClient(apiKey)

	content := []openai.ChatMessagePart{
		{
			Type: openai.ChatMessagePartTypeText,
			Text: config.Prompt,
		},
	}
	if len(config.ImageData) > 0 {
		mime := config.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		content = append(content, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", mime,
					base64.StdEncoding.EncodeToString(config.ImageData)),
			},
		})
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: content,
			},
		},
		Temperature: float32(config.Temperature),
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImages produces rendered room images from a text prompt using
// the DALL-E image API and returns their URLs.
func (o *OpenAI) GenerateImages(ctx context.Context, prompt string, n int) ([]string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	client := openai.NewClient(apiKey)

	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Model:   openai.CreateImageModelDallE3,
		Prompt:  prompt,
		N:       n,
		Size:    openai.CreateImageSize1024x1024,
		Quality: openai.CreateImageQualityStandard,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation error: %w", err)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, img := range resp.Data {
		urls = append(urls, img.URL)
	}
	return urls, nil
}
