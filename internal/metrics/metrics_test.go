package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/metrics"
)

func TestObserveCompletion_countsByOutcome(t *testing.T) {
	m := metrics.New()

	m.ObserveCompletion("groq", metrics.OutcomeSuccess, time.Second)
	m.ObserveCompletion("groq", metrics.OutcomeSuccess, 2*time.Second)
	m.ObserveCompletion("groq", metrics.OutcomeFault, time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "itinerary_completions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per provider/outcome pair")
}

func TestHandler_exposesRequestMetrics(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/history", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `itinerary_http_requests_total{method="GET",route="/history",status="200"} 1`)
	assert.Contains(t, string(body), "itinerary_http_request_duration_seconds_bucket")
}
