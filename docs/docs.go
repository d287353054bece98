// Package docs holds the OpenAPI document served under /swagger/. It is
// maintained by hand alongside the swag annotations in cmd/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://example.com",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/article-text": {
            "get": {
                "description": "Downloads an article page and returns its main text, whitespace normalized and capped at 20000 characters. Only public http(s) hosts are allowed.",
                "produces": ["application/json"],
                "tags": ["reader"],
                "summary": "Article text",
                "parameters": [
                    {"type": "string", "description": "Article URL", "name": "url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fetch.Article"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/cities": {
            "get": {
                "description": "Lists the cities with dedicated feeds and the aliases that map onto them.",
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Supported cities",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/news.CitiesResponse"}}
                }
            }
        },
        "/api/news": {
            "get": {
                "description": "Fetches the city's feeds and the national feeds concurrently and returns unique articles, newest first. Failing feeds are skipped, so the response is always 200.",
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Aggregated news",
                "parameters": [
                    {"type": "string", "description": "City name or alias (e.g. bangalore, madras)", "name": "city", "in": "query"},
                    {"maximum": 200, "minimum": 10, "type": "integer", "default": 60, "description": "Maximum number of articles", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/news.ListResponse"}}
                }
            }
        },
        "/api/reverse-geocode": {
            "get": {
                "description": "Resolves latitude and longitude to a best-guess city, state and country. Empty fields are omitted.",
                "produces": ["application/json"],
                "tags": ["geocode"],
                "summary": "Reverse geocode",
                "parameters": [
                    {"maximum": 90, "minimum": -90, "type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"maximum": 180, "minimum": -180, "type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/geocoder.Place"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/translate": {
            "post": {
                "description": "Translates up to 900 characters between Hindi and English. Upstream failures yield translatedText null with status 200.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translate"],
                "summary": "Translate text",
                "parameters": [
                    {"description": "Text and target language", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/translate.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/translate.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "entity.Article": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "link": {"type": "string"},
                "publishedAt": {"type": "string"},
                "source": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "fetch.Article": {
            "type": "object",
            "properties": {
                "byline": {"type": "string"},
                "siteName": {"type": "string"},
                "text": {"type": "string"},
                "title": {"type": "string"},
                "truncated": {"type": "boolean"},
                "url": {"type": "string"}
            }
        },
        "geocoder.Place": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "Bengaluru"},
                "country": {"type": "string", "example": "India"},
                "state": {"type": "string", "example": "Karnataka"}
            }
        },
        "news.CitiesResponse": {
            "type": "object",
            "properties": {
                "aliases": {"type": "object", "additionalProperties": {"type": "string"}},
                "cities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "news.ListResponse": {
            "type": "object",
            "properties": {
                "articles": {"type": "array", "items": {"$ref": "#/definitions/entity.Article"}}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "translate.Request": {
            "type": "object",
            "properties": {
                "q": {"type": "string", "example": "Heavy rain expected in Mumbai"},
                "target": {"type": "string", "enum": ["hi", "en"], "example": "hi"}
            }
        },
        "translate.Response": {
            "type": "object",
            "properties": {
                "translatedText": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NewaTalk API",
	Description:      "Aggregated Indian news from RSS/Atom feeds, with translation, reverse geocoding and article text for read-aloud.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
