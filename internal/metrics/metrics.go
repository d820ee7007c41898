// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package metrics defines Prometheus metrics for the MovixBox API.
// All metrics are registered on the default registry via promauto and
// exposed through promhttp at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, path and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movixbox_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration observes HTTP request latency by method and path.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movixbox_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// APIActiveRequests tracks requests currently in flight.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movixbox_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// UpstreamRequestsTotal counts calls to the MovieBox mirror by
	// operation and outcome (ok, forbidden, error).
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movixbox_upstream_requests_total",
			Help: "Total number of requests sent to the MovieBox mirror",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamRequestDuration observes upstream call latency by operation.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movixbox_upstream_request_duration_seconds",
			Help:    "MovieBox mirror request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)
)

// Upstream outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeForbidden = "forbidden"
	OutcomeError     = "error"
)

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one completed call to the MovieBox mirror.
func RecordUpstreamRequest(operation, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
