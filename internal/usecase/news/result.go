package news

import (
	"context"
	"errors"
	"time"

	"newatalk/internal/domain/entity"
)

// FeedResult is the outcome of fetching one feed.
type FeedResult struct {
	URL      string
	Articles []entity.Article
	Err      error
	Duration time.Duration
}

// OK reports whether the fetch succeeded.
func (r FeedResult) OK() bool { return r.Err == nil }

// Contribution is what the feed adds to an aggregation: its articles, or
// nothing when the fetch failed.
func (r FeedResult) Contribution() []entity.Article {
	if r.Err != nil {
		return nil
	}
	return r.Articles
}

// FailureKind labels the failure for logs and metrics. Errors exposing a
// FailureKind method (such as fetch errors from the feed transport) supply their
// own label.
func (r FeedResult) FailureKind() string {
	if r.Err == nil {
		return ""
	}
	var k interface{ FailureKind() string }
	if errors.As(r.Err, &k) {
		return k.FailureKind()
	}
	switch {
	case errors.Is(r.Err, ErrCollectDeadline):
		return "deadline"
	case errors.Is(r.Err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(r.Err, ErrFetchPanicked):
		return "panic"
	default:
		return "other"
	}
}
