package completion_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/itinerary-planner/internal/completion"
	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/metrics"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type recordingObserver struct {
	provider, outcome string
	calls             int
}

func (r *recordingObserver) ObserveCompletion(provider, outcome string, _ time.Duration) {
	r.provider, r.outcome = provider, outcome
	r.calls++
}

var _ completion.Observer = (*metrics.Metrics)(nil)

func TestWithMetrics_RecordsOutcome(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		outcome string
	}{
		{"success", nil, metrics.OutcomeSuccess},
		{"upstream", &domain.UpstreamError{StatusCode: 500, Body: "down"}, metrics.OutcomeUpstreamError},
		{"fault", errors.New("connection reset by peer"), metrics.OutcomeFault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obs := &recordingObserver{}
			g := completion.WithMetrics(generatorFunc(func(context.Context, string) (string, error) {
				if tc.err != nil {
					return "", tc.err
				}
				return "text", nil
			}), "groq", obs)

			text, err := g.Generate(context.Background(), "p")

			assert.Equal(t, tc.err, err, "errors pass through unchanged")
			if tc.err == nil {
				assert.Equal(t, "text", text)
			}
			assert.Equal(t, 1, obs.calls)
			assert.Equal(t, "groq", obs.provider)
			assert.Equal(t, tc.outcome, obs.outcome)
		})
	}
}
