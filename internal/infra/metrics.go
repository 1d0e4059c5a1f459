package infra

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the service's Prometheus collectors.
type Metrics struct {
	Registry *prometheus.Registry

	QuotesComputed  prometheus.Counter
	QuoteCacheHits  prometheus.Counter
	ProposalsSaved  prometheus.Counter
	ExportsStarted  prometheus.Counter
	ExportsFinished *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the service collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		QuotesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pricing_quotes_computed_total",
			Help: "Quotes computed by the pricing engine.",
		}),
		QuoteCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pricing_quote_cache_hits_total",
			Help: "Quote requests served from the Redis cache.",
		}),
		ProposalsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pricing_proposals_saved_total",
			Help: "Proposals persisted.",
		}),
		ExportsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pricing_exports_started_total",
			Help: "Export jobs claimed by the worker.",
		}),
		ExportsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pricing_exports_finished_total",
			Help: "Export jobs finished, by outcome.",
		}, []string{"status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pricing_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	registry.MustRegister(
		m.QuotesComputed,
		m.QuoteCacheHits,
		m.ProposalsSaved,
		m.ExportsStarted,
		m.ExportsFinished,
		m.RequestDuration,
	)

	return m
}
