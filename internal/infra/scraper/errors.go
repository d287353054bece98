package scraper

import (
	"fmt"
)

// ErrorKind classifies why a feed fetch failed.
type ErrorKind string

// Fetch failure kinds.
const (
	KindNetwork      ErrorKind = "network"
	KindTimeout      ErrorKind = "timeout"
	KindStatus       ErrorKind = "status"
	KindRead         ErrorKind = "read"
	KindParse        ErrorKind = "parse"
	KindUnrecognized ErrorKind = "unrecognized"
)

// FetchError describes a failed feed fetch.
// StatusCode is set only for KindStatus.
type FetchError struct {
	URL        string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FailureKind returns the kind as a metrics/log label.
func (e *FetchError) FailureKind() string {
	return string(e.Kind)
}
