// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package main is the entry point for the MovixBox API server.
//
// MovixBox is a thin REST facade over a MovieBox streaming-metadata
// mirror. Every endpoint validates its scalar parameters, makes one
// upstream call, and returns the upstream JSON untouched inside a uniform
// response envelope.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered sources (defaults, optional
//     config.yaml, environment variables)
//  2. Logging: global zerolog logger
//  3. Upstream client: HTTP client for the configured mirror
//  4. HTTP server: Chi router under a suture supervision tree
//
// # Configuration
//
// The one setting most deployments touch is the upstream mirror:
//
//	export MOVIEBOX_HOST=https://moviebox.ph
//	./movixbox
//
// Other environment variables: PORT, HOST, LOG_LEVEL, LOG_FORMAT,
// CORS_ORIGINS, API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE,
// MOVIEBOX_TIMEOUT. See internal/config for the full list.
//
// # Signal handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops
// accepting connections and in-flight requests get the configured
// shutdown timeout (default 10s) to finish.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikiema2006/movixbox/internal/api"
	"github.com/nikiema2006/movixbox/internal/config"
	"github.com/nikiema2006/movixbox/internal/logging"
	"github.com/nikiema2006/movixbox/internal/moviebox"
	"github.com/nikiema2006/movixbox/internal/supervisor"
	"github.com/nikiema2006/movixbox/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("mirror", cfg.MovieBox.Host).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting MovixBox API")

	client := moviebox.NewHTTPClient(&cfg.MovieBox)
	handler := api.NewHandler(client, cfg)
	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: api.DefaultChiMiddlewareConfig().CORSAllowedMethods,
		CORSAllowedHeaders: api.DefaultChiMiddlewareConfig().CORSAllowedHeaders,
		CORSMaxAge:         api.DefaultChiMiddlewareConfig().CORSMaxAge,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddAPIService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor exited with error")
		os.Exit(1)
	}

	logging.Info().Msg("Shutdown complete")
}
