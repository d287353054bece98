// Package fetch provides the read-aloud use case: turning an article page into
// plain text the client can hand to speech synthesis.
package fetch

import (
	"context"
	"errors"
)

// Content is the readable part of an article page.
type Content struct {
	Title    string
	Byline   string
	SiteName string
	Text     string
}

// ContentFetcher downloads a page and extracts its main content.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (Content, error)
}

var (
	// ErrInvalidURL indicates a malformed URL or a scheme other than http(s).
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the host resolves to a loopback, private or
	// link-local address.
	ErrPrivateIP = errors.New("private IP access denied")

	// ErrTooManyRedirects indicates the redirect limit was reached.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the page exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the page did not arrive in time.
	ErrTimeout = errors.New("request timeout")

	// ErrUpstreamStatus indicates a non-2xx answer from the article host.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrReadabilityFailed indicates no readable content could be extracted.
	ErrReadabilityFailed = errors.New("content extraction failed")
)

// IsInputError reports whether err is the caller's fault rather than the
// upstream's.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrPrivateIP)
}
