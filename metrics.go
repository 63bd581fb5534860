package convcalc

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/convcalc/conversions"
)

// Metrics holds the Prometheus registry for one App. Each App gets its own
// registry so several instances can coexist in one process.
type Metrics struct {
	Conversions *prometheus.CounterVec
	APIRequests *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "convcalc",
				Name:      "conversions_total",
				Help:      "Conversions evaluated, by pair slug and direction.",
			},
			[]string{"slug", "direction"},
		),
		APIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "convcalc",
				Name:      "api_requests_total",
				Help:      "JSON API requests by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
	}
	m.registry.MustRegister(m.Conversions, m.APIRequests)
	return m
}

// Middleware records request count, latency, and size for every route
// except static assets and the scrape endpoint itself.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "convcalc",
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public/") || path == "/metrics"
		},
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}

func (m *Metrics) observeConversion(slug string, dir conversions.Direction) {
	m.Conversions.WithLabelValues(slug, dir.String()).Inc()
}

func (m *Metrics) observeAPI(endpoint, outcome string) {
	m.APIRequests.WithLabelValues(endpoint, outcome).Inc()
}
