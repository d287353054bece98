// Package scraper fetches RSS/Atom feeds over HTTP and turns them into articles.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"newatalk/internal/domain/entity"
	"newatalk/internal/infra/feedparser"
)

// DefaultUserAgent identifies the aggregator to feed publishers.
const DefaultUserAgent = "NewaTalk/1.0 (+https://example.com)"

// Config controls a single feed fetch.
type Config struct {
	// Timeout bounds one fetch including body read. Default: 10s
	Timeout time.Duration
	// MaxBodyBytes caps the feed document size. Default: 10 MiB
	MaxBodyBytes int64
	// UserAgent is sent on every request. Default: DefaultUserAgent
	UserAgent string
}

// DefaultConfig returns the fetch defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		MaxBodyBytes: 10 * 1024 * 1024,
		UserAgent:    DefaultUserAgent,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	return c
}

// RSSFetcher retrieves a feed document and maps it to articles.
// It is safe for concurrent use.
type RSSFetcher struct {
	client *http.Client
	config Config
}

// NewRSSFetcher creates a fetcher using client. A nil client uses a default one.
func NewRSSFetcher(client *http.Client, cfg Config) *RSSFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &RSSFetcher{client: client, config: cfg.withDefaults()}
}

// Fetch retrieves the feed at feedURL, bypassing caches, and returns its articles.
// Every failure is returned as a *FetchError.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]entity.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	body, err := f.get(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	doc, err := feedparser.Decode(body)
	if err != nil {
		kind := KindParse
		if errors.Is(err, feedparser.ErrUnrecognized) {
			kind = KindUnrecognized
		}
		return nil, &FetchError{URL: feedURL, Kind: kind, Err: err}
	}

	articles := feedparser.Articles(doc, feedURL)
	slog.Debug("feed fetched",
		slog.String("feed_url", feedURL),
		slog.String("kind", string(doc.Kind())),
		slog.Int("articles", len(articles)))
	return articles, nil
}

func (f *RSSFetcher) get(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Kind: KindNetwork, Err: err}
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml;q=0.9, */*;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Kind: transportKind(ctx, err), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &FetchError{URL: feedURL, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodyBytes+1))
	if err != nil {
		kind := KindRead
		if transportKind(ctx, err) == KindTimeout {
			kind = KindTimeout
		}
		return nil, &FetchError{URL: feedURL, Kind: kind, Err: err}
	}
	if int64(len(body)) > f.config.MaxBodyBytes {
		return nil, &FetchError{
			URL:  feedURL,
			Kind: KindRead,
			Err:  fmt.Errorf("body exceeds %d bytes", f.config.MaxBodyBytes),
		}
	}
	return body, nil
}

func transportKind(ctx context.Context, err error) ErrorKind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindNetwork
}
