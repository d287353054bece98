// Package geocode serves reverse geocoding so the client can pre-select the
// user's city.
package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"newatalk/internal/handler/http/respond"
	"newatalk/internal/infra/geocoder"
	"newatalk/internal/observability/logging"
)

// Reverser resolves coordinates to a place.
type Reverser interface {
	Reverse(ctx context.Context, lat, lon float64) (geocoder.Place, error)
}

// Handler proxies reverse geocoding lookups.
type Handler struct {
	Geocoder Reverser
	Logger   *slog.Logger
}

// ServeHTTP looks up the place at lat, lon.
// @Summary      Reverse geocode
// @Description  Resolves latitude and longitude to a best-guess city, state and country. Empty fields are omitted.
// @Tags         geocode
// @Produce      json
// @Param        lat  query     number  true  "Latitude"  minimum(-90)   maximum(90)
// @Param        lon  query     number  true  "Longitude" minimum(-180)  maximum(180)
// @Success      200  {object}  geocoder.Place
// @Failure      400  {object}  respond.ErrorBody
// @Failure      500  {object}  respond.ErrorBody
// @Router       /api/reverse-geocode [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	latStr := strings.TrimSpace(query.Get("lat"))
	lonStr := strings.TrimSpace(query.Get("lon"))
	if latStr == "" || lonStr == "" {
		respond.Message(w, http.StatusBadRequest, "Missing lat/lon")
		return
	}
	lat, lon, err := geocoder.ParseCoordinates(latStr, lonStr)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid lat/lon")
		return
	}
	if h.Geocoder == nil {
		respond.Message(w, http.StatusInternalServerError, "Reverse geocoding error")
		return
	}

	place, err := h.Geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		h.logger(ctx).Warn("reverse geocoding failed",
			slog.Float64("lat", lat),
			slog.Float64("lon", lon),
			slog.String("error", respond.SanitizeError(err)))
		if geocoder.IsUpstreamStatus(err) {
			respond.Message(w, http.StatusInternalServerError, "Reverse geocoding failed")
			return
		}
		respond.Message(w, http.StatusInternalServerError, "Reverse geocoding error")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, http.StatusOK, place)
}

func (h Handler) logger(ctx context.Context) *slog.Logger {
	if h.Logger != nil {
		return logging.WithRequestID(ctx, h.Logger)
	}
	return logging.FromContext(ctx)
}

// Register mounts the geocoding route on mux.
func Register(mux *http.ServeMux, g Reverser, logger *slog.Logger) {
	mux.Handle("GET /api/reverse-geocode", Handler{Geocoder: g, Logger: logger})
}
