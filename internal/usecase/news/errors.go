// Package news aggregates articles from the resolved feed list of a city.
// It fans out one fetch per feed, merges the results in feed order, removes
// duplicate links and ranks the remainder newest first.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNotConfigured indicates the service was built without a resolver or fetcher.
	ErrNotConfigured = errors.New("news service not configured")

	// ErrFetchPanicked wraps a recovered panic from a feed fetch.
	ErrFetchPanicked = errors.New("feed fetch panicked")

	// ErrCollectDeadline marks a feed that had not finished when the
	// collection deadline passed.
	ErrCollectDeadline = errors.New("feed collection deadline exceeded")
)
