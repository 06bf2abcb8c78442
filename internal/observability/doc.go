// Package observability holds the logging, metrics, and tracing
// plumbing shared by the API server and the sweep worker.
//
// Subpackages:
//   - logging: slog setup, request ID propagation, context loggers
//   - metrics: Prometheus registry and recorders
//   - tracing: OpenTelemetry spans and the X-Trace-Id middleware
//
// Typical wiring:
//
//	logger := logging.NewLogger()
//	logger.Info("server starting")
//
//	metrics.RecordCatalogSearch("ok", elapsed)
package observability
