package news

import (
	"sort"

	"newatalk/internal/domain/entity"
)

// Merge flattens per-feed contributions in feed order.
func Merge(results []FeedResult) []entity.Article {
	n := 0
	for _, r := range results {
		n += len(r.Contribution())
	}
	merged := make([]entity.Article, 0, n)
	for _, r := range results {
		merged = append(merged, r.Contribution()...)
	}
	return merged
}

// Dedupe keeps the first article seen for each link and reports how many
// later duplicates were discarded.
func Dedupe(articles []entity.Article) ([]entity.Article, int) {
	seen := make(map[string]struct{}, len(articles))
	out := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		if _, dup := seen[a.Link]; dup {
			continue
		}
		seen[a.Link] = struct{}{}
		out = append(out, a)
	}
	return out, len(articles) - len(out)
}

// Rank sorts articles newest first in place. Missing or unparsable timestamps
// rank last; ties keep their input order.
func Rank(articles []entity.Article) {
	keys := make([]int64, len(articles))
	for i := range articles {
		keys[i] = articles[i].SortKey()
	}
	sort.Stable(byKeyDesc{articles: articles, keys: keys})
}

type byKeyDesc struct {
	articles []entity.Article
	keys     []int64
}

func (b byKeyDesc) Len() int           { return len(b.articles) }
func (b byKeyDesc) Less(i, j int) bool { return b.keys[i] > b.keys[j] }
func (b byKeyDesc) Swap(i, j int) {
	b.articles[i], b.articles[j] = b.articles[j], b.articles[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
