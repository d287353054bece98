// Package news provides the HTTP handlers for the aggregated news feed and the
// list of supported cities.
package news

import "newatalk/internal/domain/entity"

// ListResponse is the body of GET /api/news. Articles is never null.
type ListResponse struct {
	Articles []entity.Article `json:"articles"`
}

// CitiesResponse is the body of GET /api/cities.
type CitiesResponse struct {
	Cities  []string          `json:"cities" example:"delhi,mumbai,bengaluru"`
	Aliases map[string]string `json:"aliases"`
}
