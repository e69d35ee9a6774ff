package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landslide_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landslide_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Simulation metrics
	RiskSamplesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landslide_risk_samples_total",
			Help: "Total number of risk readings sampled",
		},
		[]string{"status"},
	)

	AlertsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landslide_alerts_created_total",
			Help: "Total number of alerts created",
		},
		[]string{"origin"}, // origin: auto, manual
	)

	AlertsSuppressedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "landslide_alerts_suppressed_total",
			Help: "High-risk samples suppressed by the duplicate-alert rule",
		},
	)

	AlertsAcknowledgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "landslide_alerts_acknowledged_total",
			Help: "Total number of acknowledgment requests that matched an alert",
		},
	)
)
