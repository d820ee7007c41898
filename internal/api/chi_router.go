// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikiema2006/movixbox/internal/middleware"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:    handler,
		middleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes and returns the ready handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Service endpoints: no upstream involvement.
	r.Get("/", router.handler.Root)
	r.Get("/healthz", router.handler.HealthLive)
	r.Get("/health", router.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Passthrough endpoints: instrumented, one upstream call each.
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/homepage", router.handler.Homepage)
		r.Get("/trending", router.handler.Trending)
		r.Get("/popular-searches", router.handler.PopularSearches)
		r.Get("/search", router.handler.Search)
		r.Get("/details/{subject_id}", router.handler.Details)
		r.Get("/stream/{subject_id}", router.handler.Stream)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound,
			"No such endpoint: "+r.URL.Path, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed,
			"Method not allowed", nil)
	})

	return r
}
