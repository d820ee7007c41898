// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package moviebox

import (
	"errors"
	"fmt"
)

// ErrForbidden indicates the mirror answered HTTP 403. MovieBox mirrors
// block by IP range, so this usually means the server's address is not
// welcome on the configured mirror and MOVIEBOX_HOST should point at
// another one.
var ErrForbidden = errors.New("moviebox mirror refused the request (HTTP 403)")

// UpstreamError describes a non-403 upstream failure: unexpected HTTP
// status or an API-level error code in the response envelope.
type UpstreamError struct {
	// Operation is the client method that failed, e.g. "search".
	Operation string

	// StatusCode is the HTTP status the mirror answered with, or 0 when
	// the failure happened before a status was received.
	StatusCode int

	// Message is the upstream error text, truncated to a sane size.
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("moviebox %s failed: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("moviebox %s failed: %s", e.Operation, e.Message)
}
