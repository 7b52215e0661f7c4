package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/domain"
)

// GeminiClient generates itineraries through the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGeminiClient constructs a GeminiClient. A non-empty cfg.BaseURL replaces
// the SDK's default endpoint.
func NewGeminiClient(ctx context.Context, cfg config.Completion, hc *http.Client) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("completion.NewGeminiClient: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(cfg.Temperature)),
			MaxOutputTokens: int32(cfg.MaxTokens),
		},
	}, nil
}

// Generate sends prompt as a single user turn. An APIError from the SDK is
// reported as an UpstreamError.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &domain.UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("completion.GeminiClient.Generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("completion.GeminiClient.Generate: %w", ErrEmptyCompletion)
	}
	return text, nil
}
