package feedparser

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLink returns the canonical link of an item.
// The first plain-text candidate wins; otherwise the first candidate's href,
// then its inner text. Empty when nothing resolves.
func ExtractLink(item Item) string {
	for _, l := range item.Links {
		if l.Href == "" {
			if text := strings.TrimSpace(l.Text); text != "" {
				return text
			}
		}
	}
	if len(item.Links) == 0 {
		return ""
	}
	first := item.Links[0]
	if href := strings.TrimSpace(first.Href); href != "" {
		return href
	}
	return strings.TrimSpace(first.Text)
}

// ExtractImage returns a representative image URL for an item, trying in order:
// enclosure url, media:content url or href, media:thumbnail url, and finally the
// first <img src> inside the description, summary or encoded content.
func ExtractImage(item Item) string {
	for _, m := range item.Enclosures {
		if u := strings.TrimSpace(m.URL); u != "" {
			return u
		}
	}
	for _, m := range item.MediaContents {
		if u := strings.TrimSpace(m.URL); u != "" {
			return u
		}
		if u := strings.TrimSpace(m.Href); u != "" {
			return u
		}
	}
	for _, m := range item.MediaThumbnails {
		if u := strings.TrimSpace(m.URL); u != "" {
			return u
		}
	}
	for _, html := range []string{item.Description, item.Summary, item.ContentEncoded} {
		if src := firstImageSrc(html); src != "" {
			return src
		}
	}
	return ""
}

// ExtractPublished returns the first non-empty of pubDate, published and updated, verbatim.
func ExtractPublished(item Item) string {
	for _, v := range []string{item.PubDate, item.Published, item.Updated} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// knownPublishers maps host substrings to display names.
var knownPublishers = []struct {
	hostPart string
	name     string
}{
	{"thehindu", "The Hindu"},
	{"hindustantimes", "Hindustan Times"},
	{"ndtv", "NDTV"},
	{"indiatvnews", "India TV"},
}

// ExtractSourceName derives a human-readable publisher name for a feed.
// The feed-level title wins when present; otherwise the host is classified
// against known publishers, falling back to the bare host, or "News" when the
// feed URL has no parsable host.
func ExtractSourceName(feedURL, feedTitle string) string {
	if title := strings.TrimSpace(feedTitle); title != "" {
		return title
	}
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return "News"
	}
	for _, p := range knownPublishers {
		if strings.Contains(u.Host, p.hostPart) {
			return p.name
		}
	}
	return u.Host
}

var imgSrcPattern = regexp.MustCompile(`(?i)<img[^>]+src=['"]([^'"]+)['"]`)

// firstImageSrc finds the first <img src> in an HTML fragment. goquery handles
// well-formed and most broken markup; the pattern catches escaped or truncated
// fragments the HTML tokenizer does not turn into elements.
func firstImageSrc(fragment string) string {
	if !strings.Contains(strings.ToLower(fragment), "<img") {
		return ""
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment)); err == nil {
		if src, ok := doc.Find("img[src]").First().Attr("src"); ok {
			if src = strings.TrimSpace(src); src != "" {
				return src
			}
		}
	}
	if m := imgSrcPattern.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
