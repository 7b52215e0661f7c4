package completion_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/completion"
	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/domain"
)

func newGemini(t *testing.T, h http.HandlerFunc) *completion.GeminiClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := completion.NewGeminiClient(context.Background(), config.Completion{
		Provider:    config.ProviderGemini,
		APIKey:      "AIza-test",
		BaseURL:     srv.URL,
		Model:       "gemini-test",
		Temperature: 0.7,
		MaxTokens:   2000,
	}, srv.Client())
	require.NoError(t, err)
	return c
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	c := newGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Day 1: Gion"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), "plan Kyoto")

	require.NoError(t, err)
	assert.Equal(t, "Day 1: Gion", text)
}

func TestGeminiClient_Generate_UpstreamError(t *testing.T) {
	c := newGemini(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := c.Generate(context.Background(), "plan")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Contains(t, upstream.Body, "API key not valid")
}

func TestGeminiClient_Generate_NoCandidates(t *testing.T) {
	c := newGemini(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), "plan")

	assert.ErrorIs(t, err, completion.ErrEmptyCompletion)
}
