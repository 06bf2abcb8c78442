package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConfigMetrics tracks configuration health for one component: when
// configuration was last loaded, how many values failed validation,
// and whether any fallback defaults are currently in effect. Metric
// names are prefixed with the component name, e.g.
// worker_config_fallbacks_total.
type ConfigMetrics struct {
	// LoadTimestamp is the Unix time of the last configuration load.
	LoadTimestamp prometheus.Gauge

	// ValidationErrorsTotal counts validation failures by field.
	ValidationErrorsTotal *prometheus.CounterVec

	// FallbacksTotal counts applied fallbacks by field.
	FallbacksTotal *prometheus.CounterVec

	// FallbackActive is 1 while any field runs on its fallback default.
	FallbackActive prometheus.Gauge

	componentName string
}

// NewConfigMetrics registers the configuration metric set for a
// component on the default Prometheus registry. Component names must be
// unique per process; registering the same name twice panics.
func NewConfigMetrics(componentName string) *ConfigMetrics {
	return &ConfigMetrics{
		LoadTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_load_timestamp", componentName),
			Help: fmt.Sprintf("Unix timestamp of last %s configuration load", componentName),
		}),

		ValidationErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_validation_errors_total", componentName),
			Help: fmt.Sprintf("Total number of %s configuration validation errors", componentName),
		}, []string{"field"}),

		FallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_fallbacks_total", componentName),
			Help: fmt.Sprintf("Total number of %s configuration fallback operations", componentName),
		}, []string{"field"}),

		FallbackActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_fallback_active", componentName),
			Help: fmt.Sprintf("1 if any %s configuration fallback is active, 0 otherwise", componentName),
		}),

		componentName: componentName,
	}
}

// RecordLoadTimestamp marks the current time as the last configuration
// load.
func (m *ConfigMetrics) RecordLoadTimestamp() {
	m.LoadTimestamp.SetToCurrentTime()
}

// RecordValidationError counts a validation failure for the given
// field.
func (m *ConfigMetrics) RecordValidationError(field string) {
	m.ValidationErrorsTotal.WithLabelValues(field).Inc()
}

// RecordFallback counts a fallback applied for the given field. The
// fallbackType parameter is accepted for call-site symmetry but not
// currently exported as a label.
func (m *ConfigMetrics) RecordFallback(field, fallbackType string) {
	m.FallbacksTotal.WithLabelValues(field).Inc()
}

// SetFallbackActive flips the fallback gauge. Callers set it true when
// any loaded field fell back to its default and false on a clean load.
func (m *ConfigMetrics) SetFallbackActive(field string, active bool) {
	if active {
		m.FallbackActive.Set(1)
	} else {
		m.FallbackActive.Set(0)
	}
}
