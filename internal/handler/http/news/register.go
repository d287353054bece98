package news

import (
	"log/slog"
	"net/http"
)

// Register mounts the news routes on mux.
func Register(mux *http.ServeMux, svc Aggregator, cities CityLister, logger *slog.Logger) {
	mux.Handle("GET /api/news", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/cities", CitiesHandler{Cities: cities})
}
