package browse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for browse operation metrics.
const (
	outcomeOK        = "ok"
	outcomeEmpty     = "empty"
	outcomeNoSession = "no_session"
	outcomeBoundary  = "boundary"
)

// browseOperationsTotal tracks navigation intents by operation and outcome.
// Operations: start, advance, retreat, resume, detail.
var browseOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "browse_operations_total",
		Help: "Total number of browse operations",
	},
	[]string{"operation", "outcome"},
)

func recordOperation(operation, outcome string) {
	browseOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
