package news

import (
	"net/http"

	"newatalk/internal/handler/http/respond"
)

// CityLister exposes the registry's known cities and aliases.
type CityLister interface {
	Cities() []string
	Aliases() map[string]string
}

// CitiesHandler lists the cities with dedicated feeds.
type CitiesHandler struct {
	Cities CityLister
}

// ServeHTTP returns the known city keys and the alias table.
// @Summary      Supported cities
// @Description  Cities with dedicated feeds, and the aliases accepted for them. Any other city falls back to the national feeds.
// @Tags         news
// @Produce      json
// @Success      200 {object} CitiesResponse
// @Router       /api/cities [get]
func (h CitiesHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	respond.JSON(w, http.StatusOK, CitiesResponse{
		Cities:  h.Cities.Cities(),
		Aliases: h.Cities.Aliases(),
	})
}
