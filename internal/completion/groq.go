package completion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/domain"
)

// GroqClient calls an OpenAI-compatible chat completions endpoint, Groq's by default.
type GroqClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewGroqClient constructs a GroqClient. The credential comes from cfg and is
// sent as a bearer token on every call; requests go to {cfg.BaseURL}/chat/completions.
func NewGroqClient(cfg config.Completion, hc *http.Client) *GroqClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = errorBodyDoer{next: hc}
	return &GroqClient{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate sends prompt as a single user message and returns
// choices[0].message.content. A failure status from the provider is an
// UpstreamError carrying the raw response body.
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	raw := &rawErrorBody{}
	resp, err := c.client.CreateChatCompletion(context.WithValue(ctx, rawErrorBodyKey{}, raw), openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		if status, ok := failureStatus(err); ok {
			return "", &domain.UpstreamError{StatusCode: status, Body: string(raw.data)}
		}
		return "", fmt.Errorf("completion.GroqClient.Generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion.GroqClient.Generate: %w", ErrNoChoices)
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("completion.GroqClient.Generate: %w", ErrEmptyCompletion)
	}
	return text, nil
}

// failureStatus reports the HTTP status of an error the SDK built from a
// failure response. JSON error bodies become *openai.APIError, anything else
// *openai.RequestError.
func failureStatus(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}

// rawErrorBody receives the body of a failure response. The SDK parses that
// body into its error types and drops the original bytes.
type rawErrorBody struct {
	data []byte
}

type rawErrorBodyKey struct{}

// errorBodyDoer copies failure response bodies into the rawErrorBody found in
// the request context, then hands the response on unchanged.
type errorBodyDoer struct {
	next *http.Client
}

func (d errorBodyDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}
	sink, ok := req.Context().Value(rawErrorBodyKey{}).(*rawErrorBody)
	if !ok {
		return resp, nil
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read error response: %w", err)
	}
	sink.data = data
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}
