// Package completion talks to the external large-language-model services that
// write itineraries. Every implementation reports a non-success answer from
// the provider as *domain.UpstreamError and any other failure (transport,
// timeout, unexpected payload) as a plain wrapped error.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pkordes/itinerary-planner/internal/config"
)

// ErrEmptyCompletion is returned when the provider reports success but the
// payload carries no generated text.
var ErrEmptyCompletion = errors.New("completion response contained no text")

// ErrNoChoices is returned when a chat completion response has an empty
// choices list.
var ErrNoChoices = errors.New("completion response contained no choices")

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the Generator selected by cfg.Provider. hc is used for outbound
// calls; pass nil to get a client whose timeout is cfg.Timeout.
func New(ctx context.Context, cfg config.Completion, hc *http.Client) (Generator, error) {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroqClient(cfg, hc), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg, hc)
	default:
		return nil, fmt.Errorf("completion.New: unknown provider %q", cfg.Provider)
	}
}
