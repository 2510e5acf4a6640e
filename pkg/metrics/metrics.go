// Package metrics exposes Prometheus instruments for the front desk.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors updated by the desk service.
type Metrics struct {
	registry *prometheus.Registry

	Mutations       *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	PublishFailures *prometheus.CounterVec
	Size            *prometheus.GaugeVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frontdesk",
				Name:      "mutations_total",
				Help:      "Successful registry mutations by event kind.",
			},
			[]string{"kind"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frontdesk",
				Name:      "mutation_failures_total",
				Help:      "Rejected registry operations by operation and reason.",
			},
			[]string{"op", "reason"},
		),
		PublishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "frontdesk",
				Name:      "publish_failures_total",
				Help:      "Events a publisher failed to deliver.",
			},
			[]string{"publisher"},
		),
		Size: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "frontdesk",
				Name:      "structure_size",
				Help:      "Current number of entries per registry structure.",
			},
			[]string{"structure"}, // slots, history, tables, urgent, reservations
		),
	}
	m.registry.MustRegister(
		m.Mutations, m.Failures, m.PublishFailures, m.Size,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
