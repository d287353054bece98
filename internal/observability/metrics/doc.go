// Package metrics registers the service's Prometheus collectors with the
// default registry, exposed on /metrics.
//
// Collectors are grouped by concern: HTTP serving (registry.go), feed
// ingestion and aggregation, and the translation, geocoding and article text
// collaborators (business.go). Callers use the Record helpers rather than the
// collectors directly:
//
//	start := time.Now()
//	articles, err := fetcher.Fetch(ctx, feedURL)
//	metrics.RecordFeedFetch(host, time.Since(start), len(articles), kind, err == nil)
package metrics
