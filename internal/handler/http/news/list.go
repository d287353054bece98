package news

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"newatalk/internal/domain/entity"
	"newatalk/internal/handler/http/respond"
	"newatalk/internal/observability/logging"
	newsUC "newatalk/internal/usecase/news"
)

// Aggregator produces the ranked article list for a city.
type Aggregator interface {
	Aggregate(ctx context.Context, city string, limit int) ([]entity.Article, error)
}

// ListHandler serves the aggregated feed.
type ListHandler struct {
	Svc    Aggregator
	Logger *slog.Logger
}

// ServeHTTP returns the merged, deduplicated, newest-first articles.
// @Summary      Aggregated news
// @Description  Fetches the city's feeds and the national feeds concurrently and returns unique articles, newest first. Failing feeds are skipped, so the response is always 200.
// @Tags         news
// @Produce      json
// @Param        city   query    string  false  "City name or alias (e.g. bangalore, madras)"
// @Param        limit  query    int     false  "Maximum number of articles" default(60) minimum(10) maximum(200)
// @Success      200 {object} ListResponse
// @Router       /api/news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := h.logger(ctx)

	query := r.URL.Query()
	city := query.Get("city")
	limit := newsUC.ParseLimit(query.Get("limit"))

	articles, err := h.Svc.Aggregate(ctx, city, limit)
	if err != nil {
		logger.Error("news aggregation unavailable",
			slog.String("city", city),
			slog.Any("error", err))
		articles = nil
	}
	if articles == nil {
		articles = []entity.Article{}
	}

	logger.Debug("news served",
		slog.String("city", city),
		slog.Int("limit", limit),
		slog.Int("articles", len(articles)),
		slog.Duration("duration", time.Since(start)))

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, http.StatusOK, ListResponse{Articles: articles})
}

func (h ListHandler) logger(ctx context.Context) *slog.Logger {
	if h.Logger != nil {
		return logging.WithRequestID(ctx, h.Logger)
	}
	return logging.FromContext(ctx)
}
