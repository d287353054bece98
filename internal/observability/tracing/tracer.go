package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "newatalk"

// GetTracer returns the tracer for creating spans. It resolves the global
// provider on each call so a provider installed by Setup is picked up.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Setup installs a global TracerProvider sampling ratio of root spans (children
// follow their parent) and the W3C trace-context propagator. The caller must
// call the returned shutdown function before exit.
func Setup(serviceName, version string, ratio float64, opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	}
	tp := sdktrace.NewTracerProvider(append(base, opts...)...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	_, span := tp.Tracer(instrumentationName).Start(context.Background(), "startup",
		trace.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
		))
	span.End()

	return tp.Shutdown
}
