package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the inspection API's counters on a private registry, so
// embedding hosts can run their own default registry untouched.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	pathResolutions *prometheus.CounterVec
}

// NewMetrics creates and registers the API counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netgrid_http_requests_total",
				Help: "Total number of inspection API requests",
			},
			[]string{"route", "code"},
		),
		pathResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netgrid_path_resolutions_total",
				Help: "Total number of device path resolutions",
			},
			[]string{"status"},
		),
	}
	m.registry.MustRegister(m.requests, m.pathResolutions)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
