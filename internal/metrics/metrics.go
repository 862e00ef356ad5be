// Package metrics holds the Prometheus collectors exported by the stub drafts API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors for one server instance. Each instance owns its
// registry so several servers (or tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	DraftsCreated  prometheus.Counter
	DraftsDeleted  prometheus.Counter
	StepsStored    prometheus.Counter
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DraftsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_drafts_created_total",
			Help: "Total number of portfolio drafts created",
		}),
		DraftsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_drafts_deleted_total",
			Help: "Total number of portfolio drafts deleted",
		}),
		StepsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_steps_stored_total",
			Help: "Total number of portfolio steps stored",
		}),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drafts_api_requests_total",
				Help: "Total number of HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
		RequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "drafts_api_request_duration_seconds",
				Help:    "HTTP request latency by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	m.registry.MustRegister(
		m.DraftsCreated,
		m.DraftsDeleted,
		m.StepsStored,
		m.RequestsTotal,
		m.RequestLatency,
		prometheus.NewBuildInfoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
