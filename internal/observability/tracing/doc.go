// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing via Middleware
//   - W3C Trace Context propagation
//   - Trace IDs surfaced in response headers and logs
//
// Example usage:
//
//	import "github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/tracing"
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
