// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nikiema2006/movixbox/internal/metrics"
)

func TestPrometheusMetricsCountsRequests(t *testing.T) {
	// No t.Parallel: reads shared metric state.
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/counted", "200"))

	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/counted", nil)
	handler(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/counted", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increase by 1, went %v -> %v", before, after)
	}
}

func TestPrometheusMetricsCapturesStatus(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/failing", "502"))

	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	req := httptest.NewRequest(http.MethodGet, "/failing", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("middleware must pass the status through, got %d", rec.Code)
	}
	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/failing", "502"))
	if after != before+1 {
		t.Errorf("expected 502 counter to increase by 1, went %v -> %v", before, after)
	}
}

func TestPrometheusMetricsActiveGaugeReturnsToZero(t *testing.T) {
	var during float64
	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		during = testutil.ToFloat64(metrics.APIActiveRequests)
		w.WriteHeader(http.StatusOK)
	})

	baseline := testutil.ToFloat64(metrics.APIActiveRequests)
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/gauge", nil))

	if during != baseline+1 {
		t.Errorf("expected gauge %v during the request, got %v", baseline+1, during)
	}
	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != baseline {
		t.Errorf("expected gauge back at %v, got %v", baseline, after)
	}
}

func TestMetricsResponseWriterDefaultsTo200(t *testing.T) {
	// Handlers that never call WriteHeader still count as 200.
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/implicit", "200"))

	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/implicit", nil))

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/implicit", "200"))
	if after != before+1 {
		t.Errorf("expected implicit 200 counted, went %v -> %v", before, after)
	}
}
