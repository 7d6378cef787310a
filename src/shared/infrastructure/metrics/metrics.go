// Package metrics define los contadores Prometheus del storefront.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckoutAttempts cuenta los intentos de checkout por resultado:
	// redirected, rejected, transport_error, blocked.
	CheckoutAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_attempts_total",
		Help: "Checkout attempts by outcome",
	}, []string{"outcome"})

	// ProductSearches cuenta las búsquedas de productos contra el backend.
	ProductSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_product_searches_total",
		Help: "Product searches by result (ok, empty, error)",
	}, []string{"result"})

	// LowStockAlerts cuenta las alertas de stock bajo recibidas por SSE.
	LowStockAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_low_stock_alerts_total",
		Help: "Low stock alerts received from the event stream",
	})

	// AlertStreamErrors cuenta los cortes de la conexión SSE.
	AlertStreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_alert_stream_errors_total",
		Help: "Alert stream transport interruptions",
	})
)
