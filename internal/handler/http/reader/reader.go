// Package reader serves the plain text of an article page for read-aloud.
package reader

import (
	"context"
	"net/http"
	"strings"

	"newatalk/internal/handler/http/respond"
	"newatalk/internal/usecase/fetch"
)

// TextExtractor returns the readable text of an article page.
type TextExtractor interface {
	ArticleText(ctx context.Context, url string) (fetch.Article, error)
}

// Handler serves article text. Upstream failures are logged sanitized by
// respond.SafeError.
type Handler struct {
	Svc TextExtractor
}

// ServeHTTP extracts the article at ?url=.
// @Summary      Article text
// @Description  Downloads an article page and returns its main text, whitespace normalized and capped at 20000 characters. Only public http(s) hosts are allowed.
// @Tags         reader
// @Produce      json
// @Param        url  query     string  true  "Article URL"
// @Success      200  {object}  fetch.Article
// @Failure      400  {object}  respond.ErrorBody
// @Failure      502  {object}  respond.ErrorBody
// @Router       /api/article-text [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	target := strings.TrimSpace(r.URL.Query().Get("url"))
	if target == "" {
		respond.Message(w, http.StatusBadRequest, "Missing url")
		return
	}
	if h.Svc == nil {
		respond.Message(w, http.StatusBadGateway, "article text unavailable")
		return
	}

	article, err := h.Svc.ArticleText(ctx, target)
	if err != nil {
		if fetch.IsInputError(err) {
			respond.Message(w, http.StatusBadRequest, "invalid url: must be a public http(s) address")
			return
		}
		respond.SafeError(w, http.StatusBadGateway, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	respond.JSON(w, http.StatusOK, article)
}

// Register mounts the article text route on mux.
func Register(mux *http.ServeMux, svc TextExtractor) {
	mux.Handle("GET /api/article-text", Handler{Svc: svc})
}
