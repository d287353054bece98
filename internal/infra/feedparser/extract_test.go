package feedparser_test

import (
	"testing"

	"newatalk/internal/infra/feedparser"
)

func TestExtractLink(t *testing.T) {
	tests := []struct {
		name string
		item feedparser.Item
		want string
	}{
		{
			name: "plain text link",
			item: feedparser.Item{Links: []feedparser.Link{{Text: " https://example.com/a "}}},
			want: "https://example.com/a",
		},
		{
			name: "plain text wins over earlier attributed link",
			item: feedparser.Item{Links: []feedparser.Link{
				{Href: "https://example.com/self"},
				{Text: "https://example.com/story"},
			}},
			want: "https://example.com/story",
		},
		{
			name: "first href when no plain text",
			item: feedparser.Item{Links: []feedparser.Link{
				{Href: "https://example.com/first"},
				{Href: "https://example.com/second"},
			}},
			want: "https://example.com/first",
		},
		{
			name: "inner text of attributed element without href",
			item: feedparser.Item{Links: []feedparser.Link{{Href: " ", Text: "https://example.com/inner"}}},
			want: "https://example.com/inner",
		},
		{
			name: "no links",
			item: feedparser.Item{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedparser.ExtractLink(tt.item); got != tt.want {
				t.Errorf("ExtractLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractImage(t *testing.T) {
	tests := []struct {
		name string
		item feedparser.Item
		want string
	}{
		{
			name: "enclosure beats inline img",
			item: feedparser.Item{
				Enclosures:  []feedparser.Media{{URL: "https://img.example.com/enc.jpg"}},
				Description: `<p><img src="https://img.example.com/inline.jpg"></p>`,
			},
			want: "https://img.example.com/enc.jpg",
		},
		{
			name: "media content url",
			item: feedparser.Item{
				MediaContents:   []feedparser.Media{{URL: "https://img.example.com/media.jpg"}},
				MediaThumbnails: []feedparser.Media{{URL: "https://img.example.com/thumb.jpg"}},
			},
			want: "https://img.example.com/media.jpg",
		},
		{
			name: "media content href",
			item: feedparser.Item{MediaContents: []feedparser.Media{{Href: "https://img.example.com/href.jpg"}}},
			want: "https://img.example.com/href.jpg",
		},
		{
			name: "media thumbnail",
			item: feedparser.Item{MediaThumbnails: []feedparser.Media{{URL: "https://img.example.com/thumb.jpg"}}},
			want: "https://img.example.com/thumb.jpg",
		},
		{
			name: "inline img in description",
			item: feedparser.Item{Description: `Story <img alt="x" src='https://img.example.com/d.png'/> more`},
			want: "https://img.example.com/d.png",
		},
		{
			name: "summary searched before encoded content",
			item: feedparser.Item{
				Summary:        `<img src="https://img.example.com/s.png">`,
				ContentEncoded: `<img src="https://img.example.com/c.png">`,
			},
			want: "https://img.example.com/s.png",
		},
		{
			name: "encoded content",
			item: feedparser.Item{
				Description:    "no images here",
				ContentEncoded: `<div><img src="https://img.example.com/c.png"></div>`,
			},
			want: "https://img.example.com/c.png",
		},
		{
			name: "nothing",
			item: feedparser.Item{Description: "text only"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedparser.ExtractImage(tt.item); got != tt.want {
				t.Errorf("ExtractImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPublished(t *testing.T) {
	tests := []struct {
		name string
		item feedparser.Item
		want string
	}{
		{"pubDate first", feedparser.Item{PubDate: "Mon, 01 Jan 2024 00:00:00 +0000", Updated: "2023-01-01T00:00:00Z"}, "Mon, 01 Jan 2024 00:00:00 +0000"},
		{"published", feedparser.Item{Published: "2024-01-02T00:00:00Z", Updated: "2024-01-03T00:00:00Z"}, "2024-01-02T00:00:00Z"},
		{"updated", feedparser.Item{Updated: "2024-01-03T00:00:00Z"}, "2024-01-03T00:00:00Z"},
		{"none", feedparser.Item{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedparser.ExtractPublished(tt.item); got != tt.want {
				t.Errorf("ExtractPublished() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSourceName(t *testing.T) {
	tests := []struct {
		name      string
		feedURL   string
		feedTitle string
		want      string
	}{
		{"feed title wins", "https://www.thehindu.com/feeder/default.rss", " Hindu Feed ", "Hindu Feed"},
		{"the hindu", "https://www.thehindu.com/news/national/feeder/default.rss", "", "The Hindu"},
		{"hindustan times", "https://www.hindustantimes.com/feeds/rss/india-news/rssfeed.xml", "", "Hindustan Times"},
		{"ndtv", "https://feeds.feedburner.com/ndtvnews-top-stories", "", "feeds.feedburner.com"},
		{"ndtv host", "https://www.ndtv.com/rss", "", "NDTV"},
		{"india tv", "https://www.indiatvnews.com/rssnews/topstory.xml", "", "India TV"},
		{"bare host", "https://news.example.org/rss", "", "news.example.org"},
		{"unparsable", "://bad", "", "News"},
		{"no host", "/relative/feed.xml", "", "News"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedparser.ExtractSourceName(tt.feedURL, tt.feedTitle); got != tt.want {
				t.Errorf("ExtractSourceName() = %q, want %q", got, tt.want)
			}
		})
	}
}
