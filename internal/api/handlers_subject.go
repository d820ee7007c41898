// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nikiema2006/movixbox/internal/moviebox"
)

// Details proxies details for one movie or series.
//
// GET /details/{subject_id}?type=2
//
// type selects the content kind: 1 = series, 2 = movie.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[SubjectParams]{
		ParseParams: parseSubjectParams,
		CallClient: func(ctx context.Context, h *Handler, p SubjectParams) (json.RawMessage, error) {
			if p.Type == moviebox.SubjectTypeSeries {
				return h.client.SeriesDetails(ctx, p.SubjectID)
			}
			return h.client.MovieDetails(ctx, p.SubjectID)
		},
		ErrorMessage: "Failed to retrieve details from MovieBox",
	})
}

// Stream proxies the stream links for one movie or for one episode of a
// series.
//
// GET /stream/{subject_id}?type=1&season=2&episode=5
//
// season and episode are required when type=1 (series) and ignored for
// movies.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[StreamParams]{
		ParseParams: parseStreamParams,
		CallClient: func(ctx context.Context, h *Handler, p StreamParams) (json.RawMessage, error) {
			if p.Type == moviebox.SubjectTypeSeries {
				return h.client.SeriesStreamFiles(ctx, p.SubjectID, p.Season, p.Episode)
			}
			return h.client.MovieStreamFiles(ctx, p.SubjectID)
		},
		ErrorMessage: "Failed to retrieve stream links from MovieBox",
	})
}
