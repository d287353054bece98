package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"newatalk/internal/resilience/retry"
)

// DefaultMyMemoryEndpoint is the public MyMemory API. No key is required.
const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"

type myMemory struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// NewMyMemory returns a translator backed by the MyMemory public API.
// An empty endpoint selects DefaultMyMemoryEndpoint.
func NewMyMemory(client *http.Client, endpoint, userAgent string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultMyMemoryEndpoint
	}
	return newClient("mymemory", &myMemory{client: client, endpoint: endpoint, userAgent: userAgent})
}

func (m *myMemory) translate(ctx context.Context, s, source, target string) (string, error) {
	q := url.Values{}
	q.Set("q", s)
	q.Set("langpair", source+"|"+target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if m.userAgent != "" {
		req.Header.Set("User-Agent", m.userAgent)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", retry.NewHTTPError(resp)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	out := strings.TrimSpace(body.ResponseData.TranslatedText)
	if out == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}
