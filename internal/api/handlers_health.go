// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/nikiema2006/movixbox/internal/models"
)

// upstreamProbeTimeout bounds the readiness check so a hung mirror cannot
// stall health probes.
const upstreamProbeTimeout = 5 * time.Second

// serviceInfo is the root endpoint document.
type serviceInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Mirror    string   `json:"mirror"`
	Endpoints []string `json:"endpoints"`
}

// healthStatus is the readiness document.
type healthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Upstream      struct {
		Reachable bool   `json:"reachable"`
		Error     string `json:"error,omitempty"`
	} `json:"upstream"`
}

// Root describes the service.
//
// GET /
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: serviceInfo{
			Name:    "MovixBox API",
			Version: Version,
			Mirror:  h.config.MovieBox.Host,
			Endpoints: []string{
				"/homepage",
				"/trending",
				"/popular-searches",
				"/search",
				"/details/{subject_id}",
				"/stream/{subject_id}",
			},
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive is the liveness probe. It answers as long as the process can
// serve HTTP.
//
// GET /healthz
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Health is the readiness probe. It pings the configured mirror and
// reports reachability; the endpoint itself stays 200 as long as the
// facade runs, since a blocked mirror is an operational condition, not a
// facade failure.
//
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), upstreamProbeTimeout)
	defer cancel()

	status := healthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	if err := h.client.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Upstream.Reachable = false
		status.Upstream.Error = err.Error()
	} else {
		status.Upstream.Reachable = true
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     status,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
