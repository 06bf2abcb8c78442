package config

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Component names must be unique per test binary because promauto
// registers on the default registry.

func TestNewConfigMetrics(t *testing.T) {
	metrics := NewConfigMetrics("test_registration")

	assert.NotNil(t, metrics.LoadTimestamp)
	assert.NotNil(t, metrics.ValidationErrorsTotal)
	assert.NotNil(t, metrics.FallbacksTotal)
	assert.NotNil(t, metrics.FallbackActive)
	assert.Equal(t, "test_registration", metrics.componentName)
}

func TestNewConfigMetrics_DistinctComponents(t *testing.T) {
	apiMetrics := NewConfigMetrics("test_api")
	sweepMetrics := NewConfigMetrics("test_sweeper")

	assert.NotSame(t, apiMetrics.LoadTimestamp, sweepMetrics.LoadTimestamp)

	apiMetrics.RecordLoadTimestamp()
	sweepMetrics.RecordLoadTimestamp()
}

func TestRecordLoadTimestamp(t *testing.T) {
	metrics := NewConfigMetrics("test_load_timestamp")

	metrics.RecordLoadTimestamp()

	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
}

func TestRecordValidationError_PerField(t *testing.T) {
	metrics := NewConfigMetrics("test_validation_fields")

	metrics.RecordValidationError("cron_schedule")
	metrics.RecordValidationError("timezone")
	metrics.RecordValidationError("cron_schedule")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("cron_schedule")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("timezone")))
}

func TestRecordFallback_PerField(t *testing.T) {
	metrics := NewConfigMetrics("test_fallback_fields")

	metrics.RecordFallback("session_ttl", "default")
	metrics.RecordFallback("timezone", "default")
	metrics.RecordFallback("session_ttl", "default")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("session_ttl")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("timezone")))
}

func TestSetFallbackActive(t *testing.T) {
	metrics := NewConfigMetrics("test_fallback_active")

	metrics.SetFallbackActive("", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive("", true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive("", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
}

// Mirrors what LoadConfigFromEnv does on a load where several fields
// fall back at once.
func TestConfigMetrics_DegradedLoad(t *testing.T) {
	metrics := NewConfigMetrics("test_degraded_load")

	metrics.RecordLoadTimestamp()
	fields := []string{"cron_schedule", "timezone", "sweep_timeout"}
	for _, field := range fields {
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
	}
	metrics.SetFallbackActive("multiple", true)

	for _, field := range fields {
		assert.Equal(t, float64(1),
			testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues(field)))
		assert.Equal(t, float64(1),
			testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues(field)))
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))
}

func TestConfigMetrics_ConcurrentAccess(t *testing.T) {
	metrics := NewConfigMetrics("test_concurrent")

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			metrics.RecordLoadTimestamp()
			metrics.RecordValidationError("test_field")
			metrics.RecordFallback("test_field", "default")
			metrics.SetFallbackActive("test_field", true)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, float64(10),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("test_field")))
	assert.Equal(t, float64(10),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("test_field")))
}
