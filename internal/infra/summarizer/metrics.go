package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BlurbMetricsRecorder abstracts metrics recording for blurb generation so
// tests can inject a mock and other backends can be swapped in.
type BlurbMetricsRecorder interface {
	// RecordLength records the length of a generated blurb in characters.
	RecordLength(length int)

	// RecordLimitExceeded increments the counter when a blurb exceeds the
	// configured character limit.
	RecordLimitExceeded()

	// RecordCompliance records whether a blurb is within the configured
	// character limit.
	RecordCompliance(withinLimit bool)

	// RecordDuration records the time taken to generate a blurb.
	RecordDuration(duration time.Duration)
}

// PrometheusBlurbMetrics implements BlurbMetricsRecorder using Prometheus.
type PrometheusBlurbMetrics struct {
	lengthHistogram   prometheus.Histogram
	exceededCounter   prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusBlurbMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one.
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

func getOrCreateGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		return promauto.NewGauge(opts)
	}
	return g
}

// NewPrometheusBlurbMetrics creates the Prometheus-backed recorder.
// Singleton: repeated construction in tests must not re-register metrics.
func NewPrometheusBlurbMetrics() *PrometheusBlurbMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusBlurbMetrics{
			lengthHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "movie_blurb_length_characters",
				Help:    "Distribution of blurb lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 200, 300, 400, 600, 800, 1000},
			}),
			exceededCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "movie_blurb_limit_exceeded_total",
				Help: "Total number of blurbs exceeding the configured character limit",
			}),
			complianceGauge: getOrCreateGauge(prometheus.GaugeOpts{
				Name: "movie_blurb_limit_compliance_ratio",
				Help: "Ratio of blurbs within character limit (0.0-1.0)",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "movie_blurb_generation_duration_seconds",
				Help:    "Time taken to generate a blurb via AI API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements BlurbMetricsRecorder.
func (p *PrometheusBlurbMetrics) RecordLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordLimitExceeded implements BlurbMetricsRecorder.
func (p *PrometheusBlurbMetrics) RecordLimitExceeded() {
	p.exceededCounter.Inc()
}

// RecordCompliance implements BlurbMetricsRecorder.
func (p *PrometheusBlurbMetrics) RecordCompliance(withinLimit bool) {
	if withinLimit {
		p.complianceGauge.Set(1.0)
	} else {
		p.complianceGauge.Set(0.0)
	}
}

// RecordDuration implements BlurbMetricsRecorder.
func (p *PrometheusBlurbMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}
