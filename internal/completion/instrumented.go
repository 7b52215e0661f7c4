package completion

import (
	"context"
	"errors"
	"time"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/metrics"
)

// Observer records completion calls. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveCompletion(provider, outcome string, d time.Duration)
}

// Instrumented decorates a Generator with call counting and latency metrics.
type Instrumented struct {
	next     Generator
	provider string
	obs      Observer
}

// WithMetrics wraps next so every call is recorded under provider.
func WithMetrics(next Generator, provider string, obs Observer) *Instrumented {
	return &Instrumented{next: next, provider: provider, obs: obs}
}

// Generate delegates to the wrapped Generator and records the outcome.
func (g *Instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := g.next.Generate(ctx, prompt)

	outcome := metrics.OutcomeSuccess
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &upstream):
		outcome = metrics.OutcomeUpstreamError
	case err != nil:
		outcome = metrics.OutcomeFault
	}
	g.obs.ObserveCompletion(g.provider, outcome, time.Since(start))

	return text, err
}
