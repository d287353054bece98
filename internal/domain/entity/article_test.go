package entity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle_IDEqualsLink(t *testing.T) {
	a := NewArticle("Headline", "https://example.com/story")

	assert.Equal(t, "https://example.com/story", a.ID)
	assert.Equal(t, a.Link, a.ID)
	assert.Equal(t, "Headline", a.Title)
	assert.NoError(t, a.Validate())
}

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		wantErr error
	}{
		{"valid", NewArticle("t", "https://example.com/a"), nil},
		{"missing link", NewArticle("t", ""), ErrMissingLink},
		{"blank title", NewArticle("  ", "https://example.com/a"), ErrMissingTitle},
		{"id mismatch", Article{ID: "x", Title: "t", Link: "https://example.com/a"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestArticle_PublishedTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{"rfc1123z", "Tue, 02 Jan 2024 10:00:00 +0000", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"rfc3339", "2024-01-02T10:00:00Z", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"india offset", "Tue, 02 Jan 2024 15:30:00 +0530", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"whitespace", "   ", time.Time{}, false},
		{"garbage", "not a date at all", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Article{PublishedAt: tt.raw}.PublishedTime()
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArticle_PublishedTime_ZonelessIsUTC(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("IST", 5*3600+1800)
	t.Cleanup(func() { time.Local = orig })

	got, ok := Article{PublishedAt: "2024-01-02 10:00:00"}.PublishedTime()

	require.True(t, ok)
	want := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(got), "got %v, want %v", got, want)
}

func TestArticle_SortKey(t *testing.T) {
	dated := Article{PublishedAt: "2024-01-02T10:00:00Z"}
	undated := Article{}
	broken := Article{PublishedAt: "yesterday-ish"}

	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC).UnixMilli(), dated.SortKey())
	assert.Equal(t, int64(math.MinInt64), undated.SortKey())
	assert.Equal(t, int64(math.MinInt64), broken.SortKey())

	// Pre-epoch dates must still rank above missing timestamps.
	old := Article{PublishedAt: "1960-05-01T00:00:00Z"}
	assert.Greater(t, old.SortKey(), undated.SortKey())
}
