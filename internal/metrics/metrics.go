// Package metrics defines Prometheus metrics for the pathtrace server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathtrace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathtrace_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathtrace_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathtrace_searches_total",
			Help: "Total searches by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathtrace_search_duration_seconds",
			Help:    "Search execution duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"algorithm"},
	)

	SearchSteps = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathtrace_search_steps",
			Help:    "Trace steps emitted per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	TreesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathtrace_trees_generated_total",
			Help: "Total state-space trees generated",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pathtrace_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchesTotal, SearchDuration, SearchSteps,
		TreesTotal, WSConnections,
	)
}
