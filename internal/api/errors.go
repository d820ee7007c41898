// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

// Machine-readable error codes used in APIError.Code.
const (
	// CodeValidationError marks a rejected request parameter.
	CodeValidationError = "VALIDATION_ERROR"

	// CodeUpstreamForbidden marks an upstream HTTP 403, surfaced as 403.
	CodeUpstreamForbidden = "UPSTREAM_FORBIDDEN"

	// CodeUpstreamError marks any other upstream failure, surfaced as 502.
	CodeUpstreamError = "UPSTREAM_ERROR"

	// CodeMethodNotAllowed marks a request with an unsupported HTTP method.
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// CodeNotFound marks a request for an unknown route.
	CodeNotFound = "NOT_FOUND"
)
