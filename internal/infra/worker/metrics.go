package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/pkg/config"
)

// WorkerMetrics provides Prometheus metrics for the maintenance worker.
// It embeds ConfigMetrics for configuration fallback tracking and adds
// sweep execution metrics. Domain counts (sessions expired, history rows
// removed) live in the shared observability metrics registry.
//
// Worker-specific metrics:
//   - worker_sweep_runs_total: Total sweep runs by status (success/failure)
//   - worker_sweep_duration_seconds: Duration histogram of sweep runs
//   - worker_sweep_last_success_timestamp: Unix timestamp of last successful run
type WorkerMetrics struct {
	*config.ConfigMetrics

	// SweepRunsTotal counts sweep runs, labeled success or failure.
	SweepRunsTotal *prometheus.CounterVec

	// SweepDurationSeconds measures how long one sweep run takes.
	SweepDurationSeconds prometheus.Histogram

	// SweepLastSuccessTimestamp records the last successful run.
	SweepLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates a WorkerMetrics instance. Metrics are registered
// with the default registry via promauto.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		SweepRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_sweep_runs_total",
			Help: "Total number of maintenance sweep runs by status (success/failure)",
		}, []string{"status"}),

		SweepDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_sweep_duration_seconds",
			Help:    "Duration of maintenance sweep runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 30, 60, 300},
		}),

		SweepLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_sweep_last_success_timestamp",
			Help: "Unix timestamp of the last successful maintenance sweep",
		}),
	}
}

// MustRegister is a no-op kept for the usual metrics initialization shape;
// promauto already registered everything in NewWorkerMetrics.
func (m *WorkerMetrics) MustRegister() {
}

// RecordSweepRun increments the sweep run counter.
// Status should be "success" or "failure".
func (m *WorkerMetrics) RecordSweepRun(status string) {
	m.SweepRunsTotal.WithLabelValues(status).Inc()
}

// RecordSweepDuration observes the duration of a sweep run in seconds.
func (m *WorkerMetrics) RecordSweepDuration(seconds float64) {
	m.SweepDurationSeconds.Observe(seconds)
}

// RecordLastSuccess records the current time as the last successful sweep.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.SweepLastSuccessTimestamp.SetToCurrentTime()
}
