package news_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newatalk/internal/domain/entity"
	hhttp "newatalk/internal/handler/http"
	"newatalk/internal/handler/http/news"
	"newatalk/internal/infra/scraper"
	"newatalk/internal/registry"
	newsUC "newatalk/internal/usecase/news"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAggregator struct {
	city     string
	limit    int
	articles []entity.Article
	err      error
}

func (s *stubAggregator) Aggregate(_ context.Context, city string, limit int) ([]entity.Article, error) {
	s.city, s.limit = city, limit
	return s.articles, s.err
}

func serve(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, news.ListResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body news.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListHandler_PassesQuery(t *testing.T) {
	tests := []struct {
		target    string
		wantCity  string
		wantLimit int
	}{
		{"/api/news", "", 60},
		{"/api/news?city=Bangalore&limit=25", "Bangalore", 25},
		{"/api/news?limit=5", "", 10},
		{"/api/news?limit=999", "", 200},
		{"/api/news?limit=abc", "", 60},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			agg := &stubAggregator{}
			rec, _ := serve(t, news.ListHandler{Svc: agg}, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantCity, agg.city)
			assert.Equal(t, tt.wantLimit, agg.limit)
		})
	}
}

func TestListHandler_EmptyIsArray(t *testing.T) {
	rec, _ := serve(t, news.ListHandler{Svc: &stubAggregator{}}, "/api/news")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"articles":[]}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestListHandler_ServiceErrorStill200(t *testing.T) {
	agg := &stubAggregator{err: errors.New("not configured")}
	rec, body := serve(t, news.ListHandler{Svc: agg}, "/api/news?city=delhi")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Articles)
	assert.NotNil(t, body.Articles)
}

func TestListHandler_EncodesArticles(t *testing.T) {
	a := entity.NewArticle("Metro line opens", "https://example.com/metro")
	a.PublishedAt = "Mon, 13 Oct 2026 09:00:00 +0530"
	a.Source = "The Hindu"

	rec, _ := serve(t, news.ListHandler{Svc: &stubAggregator{articles: []entity.Article{a}}}, "/api/news")

	assert.JSONEq(t, `{"articles":[{
		"id":"https://example.com/metro",
		"title":"Metro line opens",
		"link":"https://example.com/metro",
		"publishedAt":"Mon, 13 Oct 2026 09:00:00 +0530",
		"source":"The Hindu"
	}]}`, rec.Body.String())
}

type staticCities struct{}

func (staticCities) Cities() []string { return []string{"bengaluru", "delhi"} }
func (staticCities) Aliases() map[string]string {
	return map[string]string{"bangalore": "bengaluru"}
}

func TestCitiesHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	news.CitiesHandler{Cities: staticCities{}}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cities":["bengaluru","delhi"],"aliases":{"bangalore":"bengaluru"}}`, rec.Body.String())
}

/* ───────── end to end ───────── */

func rssFeed(title string, items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>` + title + `</title><link>https://example.com</link>` +
		strings.Join(items, "") + `</channel></rss>`
}

func rssItem(title, link string, published time.Time) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate></item>`,
		title, link, published.Format(time.RFC1123Z))
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewsEndpoint_EndToEnd(t *testing.T) {
	base := time.Date(2026, 10, 13, 12, 0, 0, 0, time.UTC)

	var cityItems, nationalItems []string
	for i := 0; i < 15; i++ {
		cityItems = append(cityItems, rssItem(
			fmt.Sprintf("Mumbai story %d", i),
			fmt.Sprintf("https://example.com/mumbai/%d", i),
			base.Add(-time.Duration(2*i)*time.Hour)))
	}
	for i := 0; i < 15; i++ {
		nationalItems = append(nationalItems, rssItem(
			fmt.Sprintf("National story %d", i),
			fmt.Sprintf("https://example.com/national/%d", i),
			base.Add(-time.Duration(2*i+1)*time.Hour)))
	}
	// Shared story appears in both feeds; the city copy is kept.
	shared := rssItem("Shared", "https://example.com/shared", base.Add(30*time.Minute))
	cityItems = append(cityItems, shared)
	nationalItems = append(nationalItems, shared)

	city := feedServer(t, rssFeed("Mumbai Desk", cityItems...))
	national := feedServer(t, rssFeed("National Desk", nationalItems...))
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(broken.Close)
	notXML := feedServer(t, "this is not a feed")

	reg := registry.New(
		map[entity.CityKey][]string{"mumbai": {city.URL}},
		[]string{national.URL, broken.URL, notXML.URL},
		nil,
	)
	svc := newsUC.NewService(reg, scraper.NewRSSFetcher(http.DefaultClient, scraper.DefaultConfig()))

	mux := http.NewServeMux()
	news.Register(mux, svc, reg, nil)

	rec, body := serve(t, mux, "/api/news?city=Mumbai&limit=20")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body.Articles, 20)

	seen := make(map[string]bool)
	for i, a := range body.Articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Link)
		assert.Equal(t, a.Link, a.ID)
		assert.False(t, seen[a.Link], "duplicate link %s", a.Link)
		seen[a.Link] = true
		if i > 0 {
			assert.GreaterOrEqual(t, body.Articles[i-1].SortKey(), a.SortKey(), "not newest first at %d", i)
		}
	}

	assert.Equal(t, "https://example.com/shared", body.Articles[0].Link)
	assert.Equal(t, "Mumbai Desk", body.Articles[0].Source)
	assert.Equal(t, "https://example.com/mumbai/0", body.Articles[1].Link)
	assert.Equal(t, "https://example.com/national/0", body.Articles[2].Link)
}

func TestNewsEndpoint_AliasMatchesCanonical(t *testing.T) {
	city := feedServer(t, rssFeed("Bengaluru Desk",
		rssItem("Traffic update", "https://example.com/blr/1", time.Now())))
	national := feedServer(t, rssFeed("National Desk"))

	reg := registry.New(map[entity.CityKey][]string{"bengaluru": {city.URL}}, []string{national.URL}, nil)
	svc := newsUC.NewService(reg, scraper.NewRSSFetcher(http.DefaultClient, scraper.DefaultConfig()))
	mux := http.NewServeMux()
	news.Register(mux, svc, reg, nil)

	_, viaAlias := serve(t, mux, "/api/news?city=bangalore")
	_, viaCanonical := serve(t, mux, "/api/news?city=Bengaluru")

	require.Len(t, viaAlias.Articles, 1)
	assert.Equal(t, viaCanonical.Articles, viaAlias.Articles)
}

func TestNewsEndpoint_BatchedFetchesFinishWithinRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	hanging := make([]string, 3)
	for i := range hanging {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))
		t.Cleanup(srv.Close)
		hanging[i] = srv.URL
	}
	t.Cleanup(func() { close(release) })

	const requestTimeout = 300 * time.Millisecond
	reg := registry.New(nil, hanging, nil)
	svc := newsUC.NewService(reg, scraper.NewRSSFetcher(&http.Client{}, scraper.Config{
		Timeout:      200 * time.Millisecond,
		MaxBodyBytes: 1 << 20,
		UserAgent:    "test",
	}))
	svc.MaxConcurrency = 1
	svc.Deadline = requestTimeout - requestTimeout/10

	mux := http.NewServeMux()
	news.Register(mux, svc, reg, nil)
	handler := hhttp.Timeout(requestTimeout)(mux)

	rec, body := serve(t, handler, "/api/news")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, body.Articles)
	assert.Empty(t, body.Articles)
}
