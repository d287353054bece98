package news

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"newatalk/internal/domain/entity"
	"newatalk/internal/observability/metrics"
	"newatalk/internal/observability/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// FeedFetcher retrieves one feed and maps it to articles.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]entity.Article, error)
}

// FeedResolver maps a free-text city to the ordered feed URL list.
type FeedResolver interface {
	Resolve(city string) []string
}

// Service provides the news aggregation use case.
type Service struct {
	Resolver FeedResolver
	Fetcher  FeedFetcher
	// MaxConcurrency bounds simultaneous fetches per aggregation. Zero means one
	// goroutine per feed.
	MaxConcurrency int
	// Deadline bounds a whole Collect call. Feeds still pending when it
	// passes contribute nothing. Zero waits for every fetch.
	Deadline time.Duration
}

// NewService creates a Service fetching every resolved feed concurrently.
func NewService(resolver FeedResolver, fetcher FeedFetcher) *Service {
	return &Service{Resolver: resolver, Fetcher: fetcher}
}

// Aggregate returns up to ClampLimit(limit) unique articles for city, newest first.
// Feed failures never surface; the error is reserved for a misconfigured service.
func (s *Service) Aggregate(ctx context.Context, city string, limit int) ([]entity.Article, error) {
	if s.Resolver == nil || s.Fetcher == nil {
		return nil, ErrNotConfigured
	}
	start := time.Now()
	limit = ClampLimit(limit)

	ctx, span := tracing.GetTracer().Start(ctx, "news.Aggregate")
	defer span.End()

	feeds := s.Resolver.Resolve(city)
	results := s.Collect(ctx, feeds)

	articles, duplicates := Dedupe(Merge(results))
	Rank(articles)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	metrics.RecordAggregation(time.Since(start), duplicates, len(articles))
	span.SetAttributes(
		attribute.String("news.city", city),
		attribute.Int("news.feeds", len(feeds)),
		attribute.Int("news.feeds_failed", failed),
		attribute.Int("news.duplicates", duplicates),
		attribute.Int("news.articles", len(articles)),
	)
	slog.Debug("news aggregated",
		slog.String("city", city),
		slog.Int("feeds", len(feeds)),
		slog.Int("feeds_failed", failed),
		slog.Int("duplicates", duplicates),
		slog.Int("articles", len(articles)),
		slog.Duration("duration", time.Since(start)))

	return articles, nil
}

// Collect fetches every feed concurrently and returns one FeedResult per feed
// in input order. A client disconnect on ctx does not abort fetches already
// issued; each fetcher applies its own timeout and Deadline caps the whole call.
func (s *Service) Collect(ctx context.Context, feeds []string) []FeedResult {
	results := make([]FeedResult, len(feeds))
	if len(feeds) == 0 {
		return results
	}
	detached := context.WithoutCancel(ctx)
	if s.Deadline > 0 {
		var cancel context.CancelFunc
		detached, cancel = context.WithTimeout(detached, s.Deadline)
		defer cancel()
	}

	type indexed struct {
		i   int
		res FeedResult
	}
	// Buffered so fetches finishing after the deadline never block.
	done := make(chan indexed, len(feeds))

	var g errgroup.Group
	if s.MaxConcurrency > 0 {
		g.SetLimit(s.MaxConcurrency)
	}
	go func() {
		for i, feedURL := range feeds {
			g.Go(func() error {
				if detached.Err() != nil {
					done <- indexed{i, FeedResult{URL: feedURL, Err: ErrCollectDeadline}}
					return nil
				}
				res := s.fetchOne(detached, feedURL)
				if res.Err != nil && detached.Err() != nil {
					res.Err = fmt.Errorf("%w: %w", ErrCollectDeadline, res.Err)
				}
				done <- indexed{i, res}
				return nil
			})
		}
		_ = g.Wait()
	}()

	pending := make([]bool, len(feeds))
	for i := range pending {
		pending[i] = true
	}
	for remaining := len(feeds); remaining > 0; remaining-- {
		select {
		case r := <-done:
			results[r.i] = r.res
			pending[r.i] = false
		case <-detached.Done(): // nil channel when Deadline is zero
			for i, p := range pending {
				if p {
					results[i] = FeedResult{URL: feeds[i], Err: ErrCollectDeadline}
				}
			}
			slog.Warn("feed collection deadline reached",
				slog.Int("feeds", len(feeds)),
				slog.Int("pending", remaining),
				slog.Duration("deadline", s.Deadline))
			return results
		}
	}
	return results
}

func (s *Service) fetchOne(ctx context.Context, feedURL string) (res FeedResult) {
	start := time.Now()
	res.URL = feedURL

	ctx, span := tracing.GetTracer().Start(ctx, "news.fetchFeed")
	span.SetAttributes(attribute.String("feed.url", feedURL))

	defer func() {
		if p := recover(); p != nil {
			res.Articles = nil
			res.Err = fmt.Errorf("%w: %v", ErrFetchPanicked, p)
		}
		res.Duration = time.Since(start)
		host := hostOf(feedURL)
		kind := res.FailureKind()
		metrics.RecordFeedFetch(host, res.Duration, len(res.Articles), kind, res.OK())
		if res.OK() {
			span.SetAttributes(attribute.Int("feed.articles", len(res.Articles)))
		} else {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, kind)
			slog.Warn("feed contributed nothing",
				slog.String("feed_url", feedURL),
				slog.String("kind", kind),
				slog.Any("error", res.Err))
		}
		span.End()
	}()

	res.Articles, res.Err = s.Fetcher.Fetch(ctx, feedURL)
	if res.Err != nil {
		res.Articles = nil
	}
	return res
}

func hostOf(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
