// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nikiema2006/movixbox/internal/moviebox"
	"github.com/nikiema2006/movixbox/internal/validation"
)

// NoParams is used by endpoints that take no parameters.
type NoParams struct{}

// PagingParams holds the page/per_page pair shared by listing endpoints.
type PagingParams struct {
	Page    int `validate:"min=1"`
	PerPage int `validate:"min=1"`
}

// SearchParams holds the catalog search parameters.
type SearchParams struct {
	Query       string `validate:"required"`
	SubjectType int    `validate:"oneof=0 1 2"`
	Page        int    `validate:"min=1"`
	PerPage     int    `validate:"min=1"`
}

// SubjectParams holds the details-endpoint parameters. Type follows the
// MovieBox convention: 1 = series, 2 = movie.
type SubjectParams struct {
	SubjectID int64 `validate:"min=1"`
	Type      int   `validate:"oneof=1 2"`
}

// StreamParams holds the stream-endpoint parameters. Season and Episode
// are required when Type is 1 (series) and ignored for movies.
type StreamParams struct {
	SubjectID int64 `validate:"min=1"`
	Type      int   `validate:"oneof=1 2"`
	Season    int   `validate:"required_if=Type 1,omitempty,min=1"`
	Episode   int   `validate:"required_if=Type 1,omitempty,min=1"`
}

// parseNoParams accepts any request.
func parseNoParams(_ *Handler, _ *http.Request) (NoParams, error) {
	return NoParams{}, nil
}

// parsePagingParams parses page/per_page with configured defaults and
// clamps per_page to the configured maximum.
func parsePagingParams(h *Handler, r *http.Request) (PagingParams, error) {
	page, err := getIntParam(r, "page", 1)
	if err != nil {
		return PagingParams{}, err
	}
	perPage, err := getIntParam(r, "per_page", h.config.API.DefaultPageSize)
	if err != nil {
		return PagingParams{}, err
	}
	if perPage > h.config.API.MaxPageSize {
		perPage = h.config.API.MaxPageSize
	}

	params := PagingParams{Page: page, PerPage: perPage}
	if verr := validation.ValidateStruct(&params); verr != nil {
		return PagingParams{}, verr
	}
	return params, nil
}

// parseSearchParams parses query, subject_type and paging.
func parseSearchParams(h *Handler, r *http.Request) (SearchParams, error) {
	paging, err := parsePagingParams(h, r)
	if err != nil {
		return SearchParams{}, err
	}
	subjectType, err := getIntParam(r, "subject_type", moviebox.SubjectTypeAll)
	if err != nil {
		return SearchParams{}, err
	}

	params := SearchParams{
		Query:       r.URL.Query().Get("query"),
		SubjectType: subjectType,
		Page:        paging.Page,
		PerPage:     paging.PerPage,
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		return SearchParams{}, verr
	}
	return params, nil
}

// parseSubjectID extracts the subject_id path parameter.
func parseSubjectID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "subject_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subject_id must be an integer, got %q", raw)
	}
	return id, nil
}

// parseSubjectParams parses the details-endpoint parameters.
func parseSubjectParams(_ *Handler, r *http.Request) (SubjectParams, error) {
	subjectID, err := parseSubjectID(r)
	if err != nil {
		return SubjectParams{}, err
	}
	contentType, err := getIntParam(r, "type", 0)
	if err != nil {
		return SubjectParams{}, err
	}

	params := SubjectParams{SubjectID: subjectID, Type: contentType}
	if verr := validation.ValidateStruct(&params); verr != nil {
		return SubjectParams{}, verr
	}
	return params, nil
}

// parseStreamParams parses the stream-endpoint parameters.
func parseStreamParams(_ *Handler, r *http.Request) (StreamParams, error) {
	subjectID, err := parseSubjectID(r)
	if err != nil {
		return StreamParams{}, err
	}
	contentType, err := getIntParam(r, "type", 0)
	if err != nil {
		return StreamParams{}, err
	}
	season, err := getIntParam(r, "season", 0)
	if err != nil {
		return StreamParams{}, err
	}
	episode, err := getIntParam(r, "episode", 0)
	if err != nil {
		return StreamParams{}, err
	}

	params := StreamParams{
		SubjectID: subjectID,
		Type:      contentType,
		Season:    season,
		Episode:   episode,
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		return StreamParams{}, verr
	}
	return params, nil
}
