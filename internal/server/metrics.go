package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// operationsTotal counts core operations by outcome. Input-validation
// failures at the HTTP boundary are not counted; only operations that
// reached the core are.
var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gicbank_operations_total",
	Help: "Number of ledger operations processed, by operation and status.",
}, []string{"operation", "status"})

func observe(operation, status string) {
	operationsTotal.WithLabelValues(operation, status).Inc()
}
