package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the server's Prometheus instruments on a private
// registry, so tests can run several servers in one process.
type metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	renderSeconds prometheus.Histogram
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fracticon_requests_total",
			Help: "Avatar requests by output format and HTTP status.",
		}, []string{"format", "status"}),
		renderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fracticon_render_seconds",
			Help:    "Time spent generating avatars (cache misses only).",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fracticon_cache_hits_total",
			Help: "Avatar requests served from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fracticon_cache_misses_total",
			Help: "Avatar requests that were generated.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.renderSeconds,
		m.cacheHits,
		m.cacheMisses,
	)
	return m
}
