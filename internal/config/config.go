// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML
// config file, and environment variables (highest priority).
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root configuration for the MovixBox API server.
type Config struct {
	MovieBox MovieBoxConfig `koanf:"moviebox"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// MovieBoxConfig configures the upstream MovieBox mirror.
type MovieBoxConfig struct {
	// Host is the base URL of the MovieBox mirror, e.g. "https://moviebox.ng".
	// Overridable with MOVIEBOX_HOST so a blocked mirror can be swapped
	// without a redeploy.
	Host string `koanf:"host"`

	// Timeout is the per-request timeout for upstream calls.
	Timeout time.Duration `koanf:"timeout"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig holds request-surface tunables.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds the HTTP security knobs.
type SecurityConfig struct {
	// CORSOrigins lists allowed cross-origin origins. Empty means no
	// cross-origin access is granted.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig configures the logging package.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks the configuration for values that would make the server
// misbehave at runtime. It is called by LoadWithKoanf after all layers are
// merged.
func (c *Config) Validate() error {
	u, err := url.Parse(c.MovieBox.Host)
	if err != nil {
		return fmt.Errorf("moviebox.host %q is not a valid URL: %w", c.MovieBox.Host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("moviebox.host %q must use http or https", c.MovieBox.Host)
	}
	if u.Host == "" {
		return fmt.Errorf("moviebox.host %q has no host component", c.MovieBox.Host)
	}

	if c.MovieBox.Timeout <= 0 {
		return fmt.Errorf("moviebox.timeout must be positive, got %s", c.MovieBox.Timeout)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a recognized level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}

	return nil
}
