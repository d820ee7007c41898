// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/nikiema2006/movixbox/internal/logging"
	"github.com/nikiema2006/movixbox/internal/models"
	"github.com/nikiema2006/movixbox/internal/moviebox"
	"github.com/nikiema2006/movixbox/internal/validation"
)

// ProxyConfig describes one passthrough endpoint: how to parse and
// validate its parameters, which upstream client call to make, and what
// to tell the caller when the call fails.
//
// P is the parameter struct type (e.g. SearchParams).
type ProxyConfig[P any] struct {
	// ParseParams extracts and validates parameters from the request.
	ParseParams func(h *Handler, r *http.Request) (P, error)

	// CallClient invokes the MovieBox client with the parsed parameters.
	CallClient func(ctx context.Context, h *Handler, params P) (json.RawMessage, error)

	// ErrorMessage prefixes the message returned on upstream failure.
	ErrorMessage string
}

// proxyUpstream implements the common passthrough pattern: parse and
// validate parameters (failures are 400), call the client, translate the
// error taxonomy (403 upstream stays 403, everything else becomes 502),
// and wrap the raw payload in the response envelope.
func proxyUpstream[P any](h *Handler, w http.ResponseWriter, r *http.Request, cfg ProxyConfig[P]) {
	params, err := cfg.ParseParams(h, r)
	if err != nil {
		respondValidationError(w, err)
		return
	}

	start := time.Now()
	data, err := cfg.CallClient(r.Context(), h, params)
	if err != nil {
		respondUpstreamError(w, r, cfg.ErrorMessage, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:      time.Now(),
			UpstreamTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondValidationError maps a parameter parsing failure to a 400
// envelope, preserving per-field details when the validator produced them.
func respondValidationError(w http.ResponseWriter, err error) {
	var reqErr *validation.RequestValidationError
	if errors.As(err, &reqErr) {
		apiErr := reqErr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Data:     nil,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
		return
	}

	respondError(w, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
}

// respondUpstreamError translates a MovieBox client error into the
// facade's error taxonomy.
func respondUpstreamError(w http.ResponseWriter, r *http.Request, message string, err error) {
	if errors.Is(err, moviebox.ErrForbidden) {
		logging.Ctx(r.Context()).Warn().
			Str("path", r.URL.Path).
			Msg("Upstream mirror returned 403")
		respondError(w, http.StatusForbidden, CodeUpstreamForbidden,
			message+": the MovieBox mirror refused the request (HTTP 403). "+
				"The mirror is likely blocking this server's IP; configure another "+
				"mirror with MOVIEBOX_HOST.", nil)
		return
	}

	respondError(w, http.StatusBadGateway, CodeUpstreamError, message, err)
}
