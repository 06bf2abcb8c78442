package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog metrics track calls to the upstream movie catalog API
var (
	// CatalogSearchTotal counts catalog search calls by result
	CatalogSearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_search_total",
			Help: "Total catalog search calls by result",
		},
		[]string{"result"}, // result: ok | empty | error
	)

	// CatalogSearchDuration measures catalog search call duration
	CatalogSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_search_duration_seconds",
			Help:    "Catalog search call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CatalogDetailTotal counts catalog detail fetches by result
	CatalogDetailTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_detail_total",
			Help: "Total catalog detail fetches by result",
		},
		[]string{"result"}, // result: ok | absent | error
	)

	// CatalogDetailDuration measures catalog detail fetch duration
	CatalogDetailDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_detail_duration_seconds",
			Help:    "Catalog detail fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// Sweep metrics track the background maintenance worker
var (
	// SessionsExpiredTotal counts sessions removed by the idle sweep
	SessionsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_expired_total",
			Help: "Total browse sessions removed by the idle sweep",
		},
	)

	// HistorySweptTotal counts history rows removed by the idle sweep
	HistorySweptTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "history_swept_total",
			Help: "Total history rows removed by the idle sweep",
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)
