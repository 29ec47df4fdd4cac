package document

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operations = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "barbersite_document_operations_total",
		Help: "Number of document store operations, by document, operation and result.",
	},
	[]string{"document", "operation", "result"},
)

func observe(document, operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	operations.WithLabelValues(document, operation, result).Inc()
}
