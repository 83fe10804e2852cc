// Package metrics define los instrumentos Prometheus del servicio,
// expuestos en GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados de una mutación para la etiqueta result.
const (
	ResultAccepted          = "accepted"
	ResultInvalidInput      = "invalid_input"
	ResultUnknownProduct    = "unknown_product"
	ResultInsufficientStock = "insufficient_stock"
	ResultError             = "error"
)

var (
	// MutationsTotal cuenta compras y ventas por tipo y resultado.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stock_ledger",
			Name:      "mutations_total",
			Help:      "Mutaciones de stock procesadas, por tipo y resultado.",
		},
		[]string{"kind", "result"},
	)

	// RequestDuration histograma de latencia HTTP por ruta y método.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stock_ledger",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
