// Package translator provides Hindi/English translation backends. Every
// backend runs behind its own circuit breaker with a short bounded retry, and
// reports outcomes to Prometheus.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newatalk/internal/observability/metrics"
	"newatalk/internal/resilience/circuitbreaker"
	"newatalk/internal/resilience/retry"
	"newatalk/internal/utils/text"
)

// MaxInputRunes caps the text sent to any backend.
const MaxInputRunes = 900

// Supported language codes.
const (
	Hindi   = "hi"
	English = "en"
)

var (
	// ErrUnsupportedLanguage is returned for targets other than hi and en.
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	// ErrEmptyTranslation is returned when a backend answers without text.
	ErrEmptyTranslation = errors.New("empty translation")
)

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// SourceFor returns the source language implied by target.
func SourceFor(target string) (string, error) {
	switch target {
	case Hindi:
		return English, nil
	case English:
		return Hindi, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, target)
	}
}

// backend performs one uninstrumented call.
type backend interface {
	translate(ctx context.Context, text, source, target string) (string, error)
}

// Client wraps a backend with input capping, a timeout, retry, a circuit
// breaker and metrics.
type Client struct {
	name    string
	backend backend
	breaker *circuitbreaker.CircuitBreaker
	retry   retry.Config
	timeout time.Duration
}

func newClient(name string, b backend) *Client {
	return &Client{
		name:    name,
		backend: b,
		breaker: circuitbreaker.New(circuitbreaker.TranslatorConfig(name)),
		retry:   retry.TranslatorConfig(),
		timeout: 15 * time.Second,
	}
}

// Name returns the provider name used in metrics and logs.
func (c *Client) Name() string { return c.name }

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker { return c.breaker }

// Translate translates at most MaxInputRunes of s into target.
func (c *Client) Translate(ctx context.Context, s, target string) (string, error) {
	source, err := SourceFor(target)
	if err != nil {
		return "", err
	}
	s = text.Truncate(s, MaxInputRunes)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out string
	err = retry.WithBackoff(ctx, c.retry, func() error {
		res, err := circuitbreaker.Do(c.breaker, func() (string, error) {
			return c.backend.translate(ctx, s, source, target)
		})
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	metrics.RecordTranslation(c.name, err == nil)
	if err != nil {
		if circuitbreaker.IsRejected(err) {
			slog.WarnContext(ctx, "translator circuit breaker open, request rejected",
				slog.String("provider", c.name),
				slog.String("state", c.breaker.State().String()))
		}
		return "", fmt.Errorf("%s translate: %w", c.name, err)
	}
	return out, nil
}

// languageName is used in LLM prompts.
func languageName(code string) string {
	if code == Hindi {
		return "Hindi"
	}
	return "English"
}

func prompt(s, source, target string) string {
	return fmt.Sprintf(
		"Translate the following %s news text into %s. Reply with the translation only, no notes or quotes.\n\n%s",
		languageName(source), languageName(target), s)
}
