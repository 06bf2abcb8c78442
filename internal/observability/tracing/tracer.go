package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("movie-bot")

// GetTracer returns the service-wide tracer. Handlers and clients use
// it to open spans around catalog fetches and session store calls:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "catalog.search")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
