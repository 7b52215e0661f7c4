// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Completion providers accepted by COMPLETION_PROVIDER.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	CORSOrigins []string

	// WriteTimeout bounds how long the server may take to write a response.
	// It must cover a full completion round-trip. Defaults to 120s.
	WriteTimeout time.Duration

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	Completion Completion
}

// Completion configures the external completion service.
type Completion struct {
	// Provider selects the generator: "groq" (default) or "gemini".
	Provider string

	// APIKey is the bearer credential. Required. GROQ_API_KEY is accepted
	// when COMPLETION_API_KEY is not set.
	APIKey string

	// BaseURL overrides the provider's API root. For groq it defaults to
	// Groq's OpenAI-compatible endpoint; for gemini empty means the SDK default.
	BaseURL string

	// Model is the model identifier sent with each request.
	// Defaults depend on Provider.
	Model string

	Temperature float64
	MaxTokens   int

	// Timeout bounds each outbound call. Zero means no client-side timeout.
	Timeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment take precedence over it.
// Returns an error listing every required variable that is missing and every
// variable that fails to parse.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var p parser

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		WriteTimeout: p.duration("HTTP_WRITE_TIMEOUT", 120*time.Second),
		MaxBodyBytes: int64(p.positiveInt("MAX_BODY_BYTES", 1<<20)),
		Completion: Completion{
			Provider:    strings.ToLower(getEnv("COMPLETION_PROVIDER", ProviderGroq)),
			APIKey:      getEnv("COMPLETION_API_KEY", os.Getenv("GROQ_API_KEY")),
			Temperature: p.float("COMPLETION_TEMPERATURE", 0.7),
			MaxTokens:   p.positiveInt("COMPLETION_MAX_TOKENS", 2000),
			Timeout:     p.duration("COMPLETION_TIMEOUT", 0),
		},
	}

	switch cfg.Completion.Provider {
	case ProviderGroq:
		cfg.Completion.BaseURL = getEnv("COMPLETION_BASE_URL", "https://api.groq.com/openai/v1")
		cfg.Completion.Model = getEnv("COMPLETION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct")
	case ProviderGemini:
		cfg.Completion.BaseURL = os.Getenv("COMPLETION_BASE_URL")
		cfg.Completion.Model = getEnv("COMPLETION_MODEL", "gemini-2.0-flash")
	default:
		p.invalid = append(p.invalid, "COMPLETION_PROVIDER")
	}
	cfg.Completion.BaseURL = strings.TrimRight(cfg.Completion.BaseURL, "/")

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.Completion.APIKey == "" {
		missing = append(missing, "COMPLETION_API_KEY")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(p.invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(p.invalid, ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parser collects the names of variables that fail to parse so Load can
// report all of them at once.
type parser struct {
	invalid []string
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) positiveInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return f
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
