package feedparser

import (
	"log/slog"
	"strings"

	"newatalk/internal/domain/entity"
)

// Articles maps every item of doc onto an entity.Article.
// Items without a resolvable link or title are dropped; the source name is
// resolved once for the whole feed.
func Articles(doc Document, feedURL string) []entity.Article {
	if doc == nil {
		return nil
	}
	items := doc.Items()
	if len(items) == 0 {
		return []entity.Article{}
	}

	source := ExtractSourceName(feedURL, doc.Title())
	out := make([]entity.Article, 0, len(items))
	for _, it := range items {
		link := ExtractLink(it)
		title := strings.TrimSpace(it.Title)
		if link == "" || title == "" {
			slog.Debug("dropping feed item",
				slog.String("feed_url", feedURL),
				slog.String("kind", string(doc.Kind())),
				slog.Bool("has_link", link != ""),
				slog.Bool("has_title", title != ""))
			continue
		}

		a := entity.NewArticle(title, link)
		a.Description = description(doc.Kind(), it)
		a.Image = ExtractImage(it)
		a.PublishedAt = ExtractPublished(it)
		a.Source = source
		out = append(out, a)
	}
	return out
}

// Parse decodes body and maps it to articles in one step.
func Parse(body []byte, feedURL string) ([]entity.Article, error) {
	doc, err := Decode(body)
	if err != nil {
		return nil, err
	}
	return Articles(doc, feedURL), nil
}

func description(kind Kind, it Item) string {
	var candidates []string
	switch kind {
	case KindAtom:
		candidates = []string{it.Summary, it.ContentEncoded}
	default:
		candidates = []string{it.Description, it.ContentEncoded, it.Summary}
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
