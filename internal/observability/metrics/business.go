package metrics

import (
	"time"
)

// RecordCatalogSearch records one catalog search call. Result should be
// "ok", "empty", or "error"; an empty answer is the degraded-failure path
// and worth watching separately from transport errors.
func RecordCatalogSearch(result string, duration time.Duration) {
	CatalogSearchTotal.WithLabelValues(result).Inc()
	CatalogSearchDuration.Observe(duration.Seconds())
}

// RecordCatalogDetail records one catalog detail fetch. Result should be
// "ok", "absent", or "error".
func RecordCatalogDetail(result string, duration time.Duration) {
	CatalogDetailTotal.WithLabelValues(result).Inc()
	CatalogDetailDuration.Observe(duration.Seconds())
}

// RecordSessionsExpired records sessions removed by one idle sweep run.
func RecordSessionsExpired(count int64) {
	if count > 0 {
		SessionsExpiredTotal.Add(float64(count))
	}
}

// RecordHistorySwept records history rows removed by one idle sweep run.
func RecordHistorySwept(count int64) {
	if count > 0 {
		HistorySweptTotal.Add(float64(count))
	}
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "get_session", "append_history").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
