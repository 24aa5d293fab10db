// Package llm wraps the Gemini API client used for text generation.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the default Gemini model for content generation.
const DefaultModel = "gemini-2.5-flash"

// TextGenerationOptions contains options for a single generation call.
type TextGenerationOptions struct {
	MaxTokens      int32         // Maximum number of tokens to generate
	Temperature    float32       // Temperature for randomness (0.0 to 1.0)
	ResponseSchema *genai.Schema // Optional: schema for structured JSON output
}

// Client is a thin wrapper over the genai SDK. It holds no per-request
// state and is safe to share across requests without locking.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a new Gemini client. The API key is supplied by the
// caller; nothing in this package reads the environment.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// GenerateText generates text with the given options. When a response schema
// is set, the model is constrained to JSON conforming to it.
func (c *Client) GenerateText(ctx context.Context, prompt string, options TextGenerationOptions) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, buildGenerateConfig(options))
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

// buildGenerateConfig translates the options into the SDK config. All-zero
// options yield nil, letting the model defaults apply. A response schema
// forces the JSON MIME type.
func buildGenerateConfig(options TextGenerationOptions) *genai.GenerateContentConfig {
	if options.MaxTokens <= 0 && options.Temperature <= 0 && options.ResponseSchema == nil {
		return nil
	}

	config := &genai.GenerateContentConfig{}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = options.MaxTokens
	}
	if options.Temperature > 0 {
		temp := options.Temperature
		config.Temperature = &temp
	}
	if options.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = options.ResponseSchema
	}
	return config
}
