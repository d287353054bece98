package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Feed.MaxBodyBytes)
	assert.Equal(t, DefaultUserAgent, cfg.Feed.UserAgent)
	assert.Empty(t, cfg.Feed.RegistryFile)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.InDelta(t, 5.0, cfg.RateLimit.RPS, 1e-9)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, ProviderMyMemory, cfg.Translator.Provider)
	assert.Equal(t, "https://nominatim.openstreetmap.org/reverse", cfg.Geocoder.URL)
	assert.InDelta(t, 1.0, cfg.TracingSampleRatio, 1e-9)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("FEED_FETCH_TIMEOUT", "3s")
	t.Setenv("FEED_REGISTRY_FILE", "/etc/newatalk/feeds.yaml")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://newatalk.example, http://localhost:3000")
	t.Setenv("TRANSLATOR_PROVIDER", "Claude")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.1")
	t.Setenv("VERSION", "1.4.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, "/etc/newatalk/feeds.yaml", cfg.Feed.RegistryFile)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"https://newatalk.example", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, ProviderClaude, cfg.Translator.Provider)
	assert.InDelta(t, 0.1, cfg.TracingSampleRatio, 1e-9)
	assert.Equal(t, "1.4.0", cfg.Version)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TRANSLATOR_PROVIDER", "openai")
	t.Setenv("TRACING_SAMPLE_RATIO", "2")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required")
	assert.Contains(t, err.Error(), "TRACING_SAMPLE_RATIO")
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"empty addr", func(c *Config) { c.HTTPAddr = " " }, "HTTP_ADDR"},
		{"zero feed timeout", func(c *Config) { c.Feed.Timeout = 0 }, "FEED_FETCH_TIMEOUT"},
		{"request timeout below feed timeout", func(c *Config) { c.RequestTimeout = 5 * time.Second }, "REQUEST_TIMEOUT"},
		{"zero body cap", func(c *Config) { c.Feed.MaxBodyBytes = 0 }, "FEED_MAX_BODY_BYTES"},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, "RATE_LIMIT_RPS"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "RATE_LIMIT_BURST"},
		{"bad proxy", func(c *Config) { c.RateLimit.TrustedProxies = []string{"10.0.0.0/99"} }, "TRUSTED_PROXIES"},
		{"unknown provider", func(c *Config) { c.Translator.Provider = "deepl" }, "TRANSLATOR_PROVIDER"},
		{"claude without key", func(c *Config) { c.Translator.Provider = ProviderClaude }, "ANTHROPIC_API_KEY"},
		{"geocoder scheme", func(c *Config) { c.Geocoder.URL = "ftp://geo" }, "GEOCODER_URL"},
		{"negative ratio", func(c *Config) { c.TracingSampleRatio = -0.5 }, "TRACING_SAMPLE_RATIO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_DisabledLimiterIgnoresRate(t *testing.T) {
	cfg := validConfig(t)
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.RPS = 0

	assert.NoError(t, cfg.Validate())
}

func TestFeedCollectDeadline(t *testing.T) {
	cfg := validConfig(t)
	cfg.RequestTimeout = 300 * time.Millisecond
	assert.Equal(t, 270*time.Millisecond, cfg.FeedCollectDeadline())

	cfg.RequestTimeout = 0
	assert.Zero(t, cfg.FeedCollectDeadline())
}
