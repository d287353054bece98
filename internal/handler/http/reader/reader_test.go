package reader

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"newatalk/internal/usecase/fetch"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	article fetch.Article
	err     error
	gotURL  string
}

func (s *stubService) ArticleText(_ context.Context, u string) (fetch.Article, error) {
	s.gotURL = u
	return s.article, s.err
}

func get(h http.Handler, rawURL string) *httptest.ResponseRecorder {
	target := "/api/article-text"
	if rawURL != "" {
		target += "?url=" + url.QueryEscape(rawURL)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	stub := &stubService{article: fetch.Article{
		URL:   "https://news.example.in/a",
		Title: "Budget session begins",
		Text:  "Parliament convened on Monday.",
	}}
	rec := get(Handler{Svc: stub}, "https://news.example.in/a")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://news.example.in/a", stub.gotURL)
	assert.JSONEq(t, `{"url":"https://news.example.in/a","title":"Budget session begins","text":"Parliament convened on Monday."}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		err      error
		wantCode int
	}{
		{"missing url", "", nil, http.StatusBadRequest},
		{"bad scheme", "ftp://x", fmt.Errorf("article text: %w", fetch.ErrInvalidURL), http.StatusBadRequest},
		{"private host", "http://10.0.0.1/", fmt.Errorf("article text: %w", fetch.ErrPrivateIP), http.StatusBadRequest},
		{"upstream 404", "https://example.com/x", fmt.Errorf("article text: %w", fetch.ErrUpstreamStatus), http.StatusBadGateway},
		{"no content", "https://example.com/x", fmt.Errorf("article text: %w", fetch.ErrReadabilityFailed), http.StatusBadGateway},
		{"timeout", "https://example.com/x", fmt.Errorf("article text: %w", fetch.ErrTimeout), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(Handler{Svc: &stubService{err: tt.err}}, tt.url)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, &stubService{article: fetch.Article{URL: "u", Text: "t"}})

	rec := get(mux, "https://example.com/story")
	assert.Equal(t, http.StatusOK, rec.Code)
}
