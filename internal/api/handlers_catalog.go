// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
)

// Homepage proxies the MovieBox landing-page sections.
//
// GET /homepage
func (h *Handler) Homepage(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[NoParams]{
		ParseParams: parseNoParams,
		CallClient: func(ctx context.Context, h *Handler, _ NoParams) (json.RawMessage, error) {
			return h.client.Homepage(ctx)
		},
		ErrorMessage: "Failed to retrieve homepage from MovieBox",
	})
}

// Trending proxies the trending catalog.
//
// GET /trending?page=1&per_page=24
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[PagingParams]{
		ParseParams: parsePagingParams,
		CallClient: func(ctx context.Context, h *Handler, p PagingParams) (json.RawMessage, error) {
			return h.client.Trending(ctx, p.Page, p.PerPage)
		},
		ErrorMessage: "Failed to retrieve trending titles from MovieBox",
	})
}

// PopularSearches proxies the current popular search terms.
//
// GET /popular-searches
func (h *Handler) PopularSearches(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[NoParams]{
		ParseParams: parseNoParams,
		CallClient: func(ctx context.Context, h *Handler, _ NoParams) (json.RawMessage, error) {
			return h.client.PopularSearches(ctx)
		},
		ErrorMessage: "Failed to retrieve popular searches from MovieBox",
	})
}

// Search proxies a catalog search.
//
// GET /search?query=dune&subject_type=2&page=1&per_page=24
//
// subject_type filters by content kind: 0 = all, 1 = series, 2 = movie.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	proxyUpstream(h, w, r, ProxyConfig[SearchParams]{
		ParseParams: parseSearchParams,
		CallClient: func(ctx context.Context, h *Handler, p SearchParams) (json.RawMessage, error) {
			return h.client.Search(ctx, p.Query, p.SubjectType, p.Page, p.PerPage)
		},
		ErrorMessage: "Failed to search MovieBox",
	})
}
