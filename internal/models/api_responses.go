// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package models defines the response envelope shared by all HTTP endpoints.
package models

import "time"

// APIResponse is the standardized response wrapper used by every endpoint.
//
// Status is "success" or "error". On success Data carries the upstream
// payload untouched; on error the Error field describes what went wrong.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...]},
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z", "upstream_time_ms": 182}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z"},
//	  "error": {"code": "UPSTREAM_FORBIDDEN", "message": "..."}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains per-response observability fields.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`

	// UpstreamTimeMS is the time spent waiting on the MovieBox mirror,
	// in milliseconds. Omitted for responses that never call upstream.
	UpstreamTimeMS int64 `json:"upstream_time_ms,omitempty"`
}

// APIError carries structured error details.
//
// Codes used by this service:
//   - VALIDATION_ERROR: invalid request parameters
//   - UPSTREAM_FORBIDDEN: the mirror answered 403 (likely IP blocked)
//   - UPSTREAM_ERROR: the mirror was unreachable or answered abnormally
//   - METHOD_NOT_ALLOWED: wrong HTTP method
//   - NOT_FOUND: unknown route
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
