// Package registry holds the static mapping from city keys to feed URLs
// together with the national feed list that is always queried.
package registry

import (
	"sort"

	"newatalk/internal/domain/entity"
)

// Registry maps normalized city keys to their feed URLs and carries the
// general (national) feed list. A Registry is read-only after construction
// and safe for concurrent use.
type Registry struct {
	cities  map[entity.CityKey][]string
	general []string
	aliases map[string]entity.CityKey
}

// defaultCityFeeds are city feeds with reliable RSS endpoints.
// The Hindu publishes per-city feeders; Hindustan Times uses /cities/{city}-news/rssfeed.xml.
var defaultCityFeeds = map[entity.CityKey][]string{
	"delhi": {
		"https://www.thehindu.com/news/cities/Delhi/feeder/default.rss",
		"https://www.hindustantimes.com/cities/delhi-news/rssfeed.xml",
	},
	"mumbai": {
		"https://www.thehindu.com/news/cities/mumbai/feeder/default.rss",
		"https://www.hindustantimes.com/cities/mumbai-news/rssfeed.xml",
	},
	"bengaluru": {
		"https://www.thehindu.com/news/cities/bengaluru/feeder/default.rss",
		"https://www.hindustantimes.com/cities/bengaluru-news/rssfeed.xml",
	},
	"chennai": {
		"https://www.thehindu.com/news/cities/chennai/feeder/default.rss",
		"https://www.hindustantimes.com/cities/chennai-news/rssfeed.xml",
	},
	"hyderabad": {
		"https://www.thehindu.com/news/cities/Hyderabad/feeder/default.rss",
		"https://www.hindustantimes.com/cities/hyderabad-news/rssfeed.xml",
	},
	"kolkata": {
		"https://www.thehindu.com/news/cities/kolkata/feeder/default.rss",
		"https://www.hindustantimes.com/cities/kolkata-news/rssfeed.xml",
	},
	"kochi": {
		"https://www.thehindu.com/news/cities/kochi/feeder/default.rss",
		"https://www.hindustantimes.com/cities/kochi-news/rssfeed.xml",
	},
}

// defaultGeneralFeeds are national feeds: NDTV, The Hindu, India TV, Hindustan Times.
var defaultGeneralFeeds = []string{
	"https://feeds.feedburner.com/ndtvnews-top-stories",
	"https://www.thehindu.com/news/national/feeder/default.rss",
	"https://www.indiatvnews.com/rss/topstory.xml",
	"https://www.hindustantimes.com/rss/india/rssfeed.xml",
}

// Default returns the built-in registry.
func Default() *Registry {
	return New(defaultCityFeeds, defaultGeneralFeeds, nil)
}

// New builds a Registry from explicit data. Slices are copied so later
// mutation by the caller does not leak into the registry.
// extraAliases are added on top of the built-in city aliases.
func New(cities map[entity.CityKey][]string, general []string, extraAliases map[string]entity.CityKey) *Registry {
	r := &Registry{
		cities:  make(map[entity.CityKey][]string, len(cities)),
		general: append([]string(nil), general...),
		aliases: entity.CityAliases(),
	}
	for key, feeds := range cities {
		r.cities[entity.NormalizeCity(string(key))] = append([]string(nil), feeds...)
	}
	for alias, key := range extraAliases {
		r.aliases[entity.NormalizeCity(alias).String()] = entity.NormalizeCity(string(key))
	}
	return r
}

// Normalize resolves raw city input to a key, honoring registry-level aliases.
func (r *Registry) Normalize(city string) entity.CityKey {
	key := entity.NormalizeCity(city)
	if canonical, ok := r.aliases[key.String()]; ok {
		return canonical
	}
	return key
}

// Resolve returns the ordered feed list for a city: the city's own feeds (when
// the city is known) followed by the general feeds, deduplicated by exact URL
// with the first occurrence kept. Unknown or empty cities yield the general list.
func (r *Registry) Resolve(city string) []string {
	var feeds []string
	if key := r.Normalize(city); !key.IsZero() {
		feeds = append(feeds, r.cities[key]...)
	}
	feeds = append(feeds, r.general...)
	return dedupe(feeds)
}

// General returns a copy of the general feed list.
func (r *Registry) General() []string {
	return append([]string(nil), r.general...)
}

// Cities returns the known city keys in lexical order.
func (r *Registry) Cities() []string {
	out := make([]string, 0, len(r.cities))
	for key := range r.cities {
		out = append(out, key.String())
	}
	sort.Strings(out)
	return out
}

// Aliases returns a copy of the alias table in effect for this registry.
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for alias, key := range r.aliases {
		out[alias] = key.String()
	}
	return out
}

// FeedCount returns the number of distinct feed URLs known to the registry.
func (r *Registry) FeedCount() int {
	all := append([]string(nil), r.general...)
	for _, feeds := range r.cities {
		all = append(all, feeds...)
	}
	return len(dedupe(all))
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
