// Package observability groups the logging, metrics and tracing subpackages.
//
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for feeds, aggregation and collaborators
//   - tracing: OpenTelemetry provider setup and HTTP middleware
//
// Example usage:
//
//	logger := logging.NewLogger()
//	shutdown := tracing.Setup("newatalk-api", version, 1.0)
//	defer shutdown(ctx)
//
//	metrics.RecordFeedFetch(host, elapsed, n, "", true)
package observability
