package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newatalk/internal/observability/logging"
	"newatalk/internal/observability/metrics"
	"newatalk/internal/observability/tracing"
	"newatalk/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultMaxRunes bounds the text returned for read-aloud.
const DefaultMaxRunes = 20000

// Article is the read-aloud payload.
type Article struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Byline    string `json:"byline,omitempty"`
	SiteName  string `json:"siteName,omitempty"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated,omitempty"`
}

// Service extracts article text.
type Service struct {
	Fetcher  ContentFetcher
	MaxRunes int
}

// NewService creates a Service with DefaultMaxRunes.
func NewService(f ContentFetcher) *Service {
	return &Service{Fetcher: f, MaxRunes: DefaultMaxRunes}
}

// ArticleText fetches url and returns its whitespace-normalized text, capped
// at MaxRunes.
func (s *Service) ArticleText(ctx context.Context, url string) (Article, error) {
	if s.Fetcher == nil {
		return Article{}, errors.New("article text service not configured")
	}
	ctx, span := tracing.GetTracer().Start(ctx, "fetch.ArticleText")
	defer span.End()
	span.SetAttributes(attribute.String("article.url", url))

	start := time.Now()
	content, err := s.Fetcher.FetchContent(ctx, url)
	metrics.RecordContentFetch(time.Since(start), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		logging.FromContext(ctx).Warn("article text extraction failed",
			slog.String("url", url),
			slog.Any("error", err))
		return Article{}, fmt.Errorf("article text: %w", err)
	}

	body := text.CollapseWhitespace(content.Text)
	if body == "" {
		return Article{}, fmt.Errorf("article text: %w: empty text", ErrReadabilityFailed)
	}

	out := Article{
		URL:      url,
		Title:    text.CollapseWhitespace(content.Title),
		Byline:   text.CollapseWhitespace(content.Byline),
		SiteName: content.SiteName,
		Text:     body,
	}
	if limit := s.MaxRunes; limit > 0 && text.CountRunes(body) > limit {
		out.Text = text.Truncate(body, limit)
		out.Truncated = true
	}
	span.SetAttributes(attribute.Int("article.runes", text.CountRunes(out.Text)))
	return out, nil
}
