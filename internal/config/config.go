// Package config assembles the service configuration from environment
// variables and validates it before the server starts.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	pkgconfig "newatalk/pkg/config"
)

// Translator providers.
const (
	ProviderMyMemory = "mymemory"
	ProviderOpenAI   = "openai"
	ProviderClaude   = "claude"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full service configuration.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
	Version         string

	Feed        FeedConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Translator  TranslatorConfig
	Geocoder    GeocoderConfig
	ArticleText ArticleTextConfig

	TracingSampleRatio float64
}

// FeedConfig controls upstream feed fetching.
type FeedConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	// RegistryFile replaces the built-in feed registry when set.
	RegistryFile string
	// MaxConcurrency bounds fetches per request; zero means one per feed.
	MaxConcurrency int
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled        bool
	RPS            float64
	Burst          int
	TrustedProxies []string
}

// CORSConfig lists browser origins allowed to call the API. Empty disables CORS.
type CORSConfig struct {
	AllowedOrigins []string
}

// TranslatorConfig selects and configures the translation backend.
type TranslatorConfig struct {
	Provider        string
	MyMemoryURL     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	ClaudeModel     string
}

// GeocoderConfig points at a Nominatim compatible reverse geocoding endpoint.
type GeocoderConfig struct {
	URL     string
	Timeout time.Duration
}

// ArticleTextConfig bounds the read-aloud article extraction.
type ArticleTextConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
}

// DefaultUserAgent identifies the service to upstream providers.
const DefaultUserAgent = "NewaTalk/1.0 (+https://example.com)"

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        pkgconfig.GetEnvString("HTTP_ADDR", ":8080"),
		ShutdownTimeout: pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		Version:         pkgconfig.GetEnvString("VERSION", "dev"),
		Feed: FeedConfig{
			Timeout:        pkgconfig.GetEnvDuration("FEED_FETCH_TIMEOUT", 10*time.Second),
			MaxBodyBytes:   pkgconfig.GetEnvInt64("FEED_MAX_BODY_BYTES", 10<<20),
			UserAgent:      pkgconfig.GetEnvString("FEED_USER_AGENT", DefaultUserAgent),
			RegistryFile:   pkgconfig.GetEnvString("FEED_REGISTRY_FILE", ""),
			MaxConcurrency: pkgconfig.GetEnvInt("FEED_MAX_CONCURRENCY", 0),
		},
		RateLimit: RateLimitConfig{
			Enabled:        pkgconfig.GetEnvBool("RATE_LIMIT_ENABLED", true),
			RPS:            pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", 5),
			Burst:          pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 20),
			TrustedProxies: pkgconfig.GetEnvStringList("TRUSTED_PROXIES", nil),
		},
		CORS: CORSConfig{
			AllowedOrigins: pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		},
		Translator: TranslatorConfig{
			Provider:        strings.ToLower(pkgconfig.GetEnvString("TRANSLATOR_PROVIDER", ProviderMyMemory)),
			MyMemoryURL:     pkgconfig.GetEnvString("MYMEMORY_URL", ""),
			OpenAIAPIKey:    pkgconfig.GetEnvString("OPENAI_API_KEY", ""),
			OpenAIModel:     pkgconfig.GetEnvString("OPENAI_MODEL", ""),
			AnthropicAPIKey: pkgconfig.GetEnvString("ANTHROPIC_API_KEY", ""),
			ClaudeModel:     pkgconfig.GetEnvString("CLAUDE_MODEL", ""),
		},
		Geocoder: GeocoderConfig{
			URL:     pkgconfig.GetEnvString("GEOCODER_URL", "https://nominatim.openstreetmap.org/reverse"),
			Timeout: pkgconfig.GetEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
		},
		ArticleText: ArticleTextConfig{
			Timeout:      pkgconfig.GetEnvDuration("ARTICLE_TEXT_TIMEOUT", 10*time.Second),
			MaxBodyBytes: pkgconfig.GetEnvInt64("ARTICLE_TEXT_MAX_BODY_BYTES", 10<<20),
		},
		TracingSampleRatio: pkgconfig.GetEnvFloat("TRACING_SAMPLE_RATIO", 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		add("HTTP_ADDR must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
		"FEED_FETCH_TIMEOUT":   c.Feed.Timeout,
		"GEOCODER_TIMEOUT":     c.Geocoder.Timeout,
		"ARTICLE_TEXT_TIMEOUT": c.ArticleText.Timeout,
	} {
		if err := pkgconfig.ValidatePositiveDuration(d); err != nil {
			add("%s: %v", name, err)
		}
	}
	if c.RequestTimeout < 0 {
		add("REQUEST_TIMEOUT must not be negative")
	}
	if c.RequestTimeout > 0 && c.RequestTimeout <= c.Feed.Timeout {
		add("REQUEST_TIMEOUT (%v) must exceed FEED_FETCH_TIMEOUT (%v)", c.RequestTimeout, c.Feed.Timeout)
	}
	if c.Feed.MaxBodyBytes <= 0 {
		add("FEED_MAX_BODY_BYTES must be positive")
	}
	if c.ArticleText.MaxBodyBytes <= 0 {
		add("ARTICLE_TEXT_MAX_BODY_BYTES must be positive")
	}
	if c.Feed.MaxConcurrency < 0 {
		add("FEED_MAX_CONCURRENCY must not be negative")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			add("RATE_LIMIT_RPS must be positive when rate limiting is enabled")
		}
		if c.RateLimit.Burst < 1 {
			add("RATE_LIMIT_BURST must be at least 1")
		}
	}
	if err := pkgconfig.ValidateCIDRs(c.RateLimit.TrustedProxies); err != nil {
		add("TRUSTED_PROXIES: %v", err)
	}

	switch c.Translator.Provider {
	case ProviderMyMemory:
	case ProviderOpenAI:
		if c.Translator.OpenAIAPIKey == "" {
			add("OPENAI_API_KEY is required when TRANSLATOR_PROVIDER=openai")
		}
	case ProviderClaude:
		if c.Translator.AnthropicAPIKey == "" {
			add("ANTHROPIC_API_KEY is required when TRANSLATOR_PROVIDER=claude")
		}
	default:
		add("TRANSLATOR_PROVIDER must be one of mymemory, openai, claude, got %q", c.Translator.Provider)
	}

	if !strings.HasPrefix(c.Geocoder.URL, "http://") && !strings.HasPrefix(c.Geocoder.URL, "https://") {
		add("GEOCODER_URL must be an http(s) URL")
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		add("TRACING_SAMPLE_RATIO must be within [0, 1], got %v", c.TracingSampleRatio)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// FeedCollectDeadline is the budget for fetching all feeds of one request. It
// leaves a tenth of REQUEST_TIMEOUT for ranking and writing the response, so
// batched fetches under FEED_MAX_CONCURRENCY cannot outlive the request.
// Zero when requests have no timeout.
func (c *Config) FeedCollectDeadline() time.Duration {
	if c.RequestTimeout <= 0 {
		return 0
	}
	return c.RequestTimeout - c.RequestTimeout/10
}
