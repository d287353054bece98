// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs the SDK TracerProvider; Middleware opens a server span per
// HTTP request and GetTracer is used for child spans such as per-feed fetches.
//
//	shutdown := tracing.Setup("newatalk", version, 1.0)
//	defer shutdown(context.Background())
package tracing
