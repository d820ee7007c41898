// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package api provides the HTTP surface of the MovixBox facade: a Chi
// router, the passthrough handlers, and the middleware glue between them.
package api

import (
	"time"

	"github.com/nikiema2006/movixbox/internal/config"
	"github.com/nikiema2006/movixbox/internal/moviebox"
)

// Version is the service version reported by the root endpoint.
// Overridden at build time with -ldflags "-X ...api.Version=v1.2.3".
var Version = "dev"

// Handler carries the dependencies of all API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_catalog.go: homepage, trending, popular searches, search
//   - handlers_subject.go: details and stream endpoints
//   - handlers_health.go: root, liveness and readiness endpoints
type Handler struct {
	client    moviebox.Client
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
//
//	handler := api.NewHandler(client, cfg)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(client moviebox.Client, cfg *config.Config) *Handler {
	return &Handler{
		client:    client,
		config:    cfg,
		startTime: time.Now(),
	}
}
