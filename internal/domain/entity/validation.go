package entity

import (
	"fmt"
	"net/url"
	"strings"
)

const maxURLLength = 2048

// ValidateURL accepts absolute http(s) URLs with a host, as used for feed and
// article links. Failures are *ValidationError on field "url".
func ValidateURL(rawURL string) error {
	invalid := func(format string, args ...any) error {
		return &ValidationError{Field: "url", Message: fmt.Sprintf(format, args...)}
	}

	switch {
	case strings.TrimSpace(rawURL) == "":
		return invalid("url is required")
	case len(rawURL) > maxURLLength:
		return invalid("url must not exceed %d characters", maxURLLength)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return invalid("malformed url: %v", err)
	}
	if !strings.EqualFold(u.Scheme, "http") && !strings.EqualFold(u.Scheme, "https") {
		return invalid("scheme %q not supported, use http or https", u.Scheme)
	}
	if u.Hostname() == "" {
		return invalid("url %q has no host", rawURL)
	}
	return nil
}
