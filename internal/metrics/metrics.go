// Package metrics holds the prometheus collectors shared by the HTTP and MCP
// surfaces.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the balancing collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	gatherer prometheus.Gatherer

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheLookup *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Passing a fresh prometheus.NewRegistry() keeps tests isolated.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stoich_balance_requests_total",
				Help: "Total number of balance requests by surface, outcome and error kind.",
			},
			[]string{"surface", "outcome", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stoich_balance_duration_seconds",
				Help:    "Duration of balance requests, cache lookups included.",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
			},
			[]string{"surface"},
		),
		cacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stoich_cache_lookups_total",
				Help: "Result cache lookups by result (hit, miss, error).",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.cacheLookup)

	return m
}

// ObserveBalance records one finished request. kind is "" on success.
func (m *Metrics) ObserveBalance(surface, kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if kind != "" {
		outcome = OutcomeError
	}
	m.requests.WithLabelValues(surface, outcome, kind).Inc()
	m.duration.WithLabelValues(surface).Observe(elapsed.Seconds())
}

// ObserveCache records a cache lookup result: "hit", "miss" or "error".
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheLookup.WithLabelValues(result).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
