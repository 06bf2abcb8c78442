// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes domain metrics including:
//   - Catalog API metrics (searches, detail fetches, durations)
//   - Session and history sweep metrics
//   - Database query metrics
//
// HTTP transport metrics live with the HTTP middleware. All metrics here are
// registered with the Prometheus default registry and exposed via /metrics.
//
// Example usage:
//
//	import "github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/metrics"
//
//	func search(genre string) {
//	    start := time.Now()
//	    // ... call the catalog ...
//	    metrics.RecordCatalogSearch("ok", time.Since(start))
//	}
package metrics
