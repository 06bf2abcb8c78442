package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts token requests by result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total token requests by result",
		},
		[]string{"result"}, // result: success | failure
	)

	// authDuration tracks token request duration.
	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Token request duration",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// authzCheckDuration tracks bearer validation duration in the middleware.
	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Authorization check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
)

// RecordAuthRequest records a token request outcome.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthDuration records token request duration.
func RecordAuthDuration(durationSeconds float64) {
	authDuration.Observe(durationSeconds)
}

// RecordAuthzCheckDuration records bearer validation duration.
func RecordAuthzCheckDuration(durationSeconds float64) {
	authzCheckDuration.Observe(durationSeconds)
}
