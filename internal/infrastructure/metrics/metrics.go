package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Giphy gateway metrics - using explicit registration
var (
	// HTTP request counter
	RequestsTotal *prometheus.CounterVec

	// Upstream Giphy call counter
	UpstreamCallsTotal *prometheus.CounterVec

	// Upstream Giphy latency histogram
	UpstreamLatency *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giphy",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	UpstreamCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giphy",
			Subsystem: "gateway",
			Name:      "upstream_calls_total",
			Help:      "Total Giphy API calls",
		},
		[]string{"operation", "status"},
	)

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "giphy",
			Subsystem: "gateway",
			Name:      "upstream_latency_seconds",
			Help:      "Giphy API response time in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(UpstreamCallsTotal)
	prometheus.MustRegister(UpstreamLatency)
	log.Info().Msg("gateway metrics registered with Prometheus")
}

// RecordRequest records an HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordUpstreamCall records one Giphy API round trip
func RecordUpstreamCall(operation, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	UpstreamCallsTotal.WithLabelValues(operation, status).Inc()
	UpstreamLatency.WithLabelValues(operation).Observe(durationSec)
}
