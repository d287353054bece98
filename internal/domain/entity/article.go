// Package entity defines the core domain entities of the news aggregator.
// It contains the unified Article record produced from heterogeneous RSS/Atom
// items and the CityKey used to select region-specific feeds.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Article is the unified output record for a single news story.
// ID always equals Link; the link is the deduplication key across feeds.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"` // raw value from the feed, never reformatted
	Source      string `json:"source,omitempty"`
}

// NewArticle builds an Article with ID bound to link.
func NewArticle(title, link string) Article {
	return Article{
		ID:    link,
		Title: title,
		Link:  link,
	}
}

// Validate reports whether the article carries the fields required for emission.
func (a Article) Validate() error {
	if strings.TrimSpace(a.Link) == "" {
		return ErrMissingLink
	}
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}
	if a.ID != a.Link {
		return &ValidationError{Field: "id", Message: "id must equal link"}
	}
	return nil
}

// PublishedTime parses PublishedAt leniently. Values without a zone are read as UTC.
// ok is false when the value is missing or cannot be parsed.
func (a Article) PublishedTime() (t time.Time, ok bool) {
	raw := strings.TrimSpace(a.PublishedAt)
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// SortKey returns the ranking key used by the aggregator: Unix milliseconds of the
// publish time, or math.MinInt64 when the timestamp is missing or unparsable so that
// such articles rank after every dated one.
func (a Article) SortKey() int64 {
	t, ok := a.PublishedTime()
	if !ok {
		return math.MinInt64
	}
	return t.UnixMilli()
}
