// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

// Package moviebox is a thin HTTP client for the MovieBox web API.
//
// The client is deliberately dumb: it builds URLs, sends GET requests and
// hands back the upstream `data` payload as raw JSON. It does not model,
// validate or transform the payloads - they belong to the mirror, not to
// this service. The only semantics it adds are the error taxonomy
// (ErrForbidden for HTTP 403, *UpstreamError for everything else abnormal)
// and Prometheus instrumentation of every call.
package moviebox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/nikiema2006/movixbox/internal/config"
	"github.com/nikiema2006/movixbox/internal/metrics"
)

// Subject types as the MovieBox API encodes them. The same values appear
// in search filters and in the details/stream `type` parameter.
const (
	SubjectTypeAll    = 0
	SubjectTypeSeries = 1
	SubjectTypeMovie  = 2
)

// apiBasePath is the path prefix of the MovieBox web backend.
const apiBasePath = "/wefeed-h5-bff/web"

// maxErrorBodySize limits how much of an error response body is read back
// for diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// Client is the interface the API handlers program against. The HTTP
// implementation below is used in production; tests substitute a mock.
//
// All methods accept a context for cancellation, return the upstream
// payload as opaque JSON on success, and map failures to the package's
// error taxonomy. All methods are safe for concurrent use.
type Client interface {
	// Ping checks that the configured mirror answers at all.
	Ping(ctx context.Context) error

	// Homepage returns the mirror's landing-page sections.
	Homepage(ctx context.Context) (json.RawMessage, error)

	// Trending returns the trending catalog page.
	Trending(ctx context.Context, page, perPage int) (json.RawMessage, error)

	// PopularSearches returns the current popular search terms.
	PopularSearches(ctx context.Context) (json.RawMessage, error)

	// Search runs a catalog search. subjectType filters by content kind
	// (SubjectTypeAll, SubjectTypeSeries, SubjectTypeMovie).
	Search(ctx context.Context, query string, subjectType, page, perPage int) (json.RawMessage, error)

	// MovieDetails returns details for a movie subject.
	MovieDetails(ctx context.Context, subjectID int64) (json.RawMessage, error)

	// SeriesDetails returns details for a series subject.
	SeriesDetails(ctx context.Context, subjectID int64) (json.RawMessage, error)

	// MovieStreamFiles returns the stream links for a movie.
	MovieStreamFiles(ctx context.Context, subjectID int64) (json.RawMessage, error)

	// SeriesStreamFiles returns the stream links for one episode of a series.
	SeriesStreamFiles(ctx context.Context, subjectID int64, season, episode int) (json.RawMessage, error)
}

// HTTPClient talks to a MovieBox mirror over HTTP.
//
// Requests carry a browser User-Agent and a Referer pointing back at the
// mirror; without those most mirrors answer 403 unconditionally. Anything
// beyond headers (token minting, signature schemes) is out of scope here.
type HTTPClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// compile-time interface check
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a MovieBox client from configuration.
func NewHTTPClient(cfg *config.MovieBoxConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.Host,
		userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
			"(KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// envelope is the wrapper every MovieBox web API response uses. Only the
// envelope is decoded; data stays raw.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// readBodyForError reads up to maxErrorBodySize of the response body for
// error reporting. Returns a placeholder if reading fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}

// get performs one GET against the mirror and returns the raw data payload.
// operation names the call for error reporting and metrics; path is
// relative to apiBasePath.
func (c *HTTPClient) get(ctx context.Context, operation, path string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + apiBasePath + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	start := time.Now()
	data, err := c.doGet(ctx, operation, reqURL)
	metrics.RecordUpstreamRequest(operation, outcomeFor(err), time.Since(start))
	return data, err
}

// doGet is the transport half of get, separated so get can record metrics
// around it.
func (c *HTTPClient) doGet(ctx context.Context, operation, reqURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Operation: operation, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		// Drain for connection reuse; the body is mirror boilerplate.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%s: %w", operation, ErrForbidden)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    string(readBodyForError(resp.Body)),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	if env.Code != 0 {
		return nil, &UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error %d: %s", env.Code, env.Message),
		}
	}

	return env.Data, nil
}

// outcomeFor maps a client error to a metrics outcome label.
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrForbidden):
		return metrics.OutcomeForbidden
	default:
		return metrics.OutcomeError
	}
}

// Ping checks mirror reachability by requesting the homepage.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.get(ctx, "ping", "/home", nil)
	return err
}

// Homepage returns the mirror's landing-page sections.
func (c *HTTPClient) Homepage(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "homepage", "/home", nil)
}

// Trending returns one page of the trending catalog.
func (c *HTTPClient) Trending(ctx context.Context, page, perPage int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	return c.get(ctx, "trending", "/subject/trending", params)
}

// PopularSearches returns the current popular search terms.
func (c *HTTPClient) PopularSearches(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "popular_searches", "/subject/popular-search", nil)
}

// Search runs a catalog search.
func (c *HTTPClient) Search(ctx context.Context, query string, subjectType, page, perPage int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("keyword", query)
	params.Set("subjectType", strconv.Itoa(subjectType))
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	return c.get(ctx, "search", "/subject/search", params)
}

// MovieDetails returns details for a movie subject.
func (c *HTTPClient) MovieDetails(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("subjectId", strconv.FormatInt(subjectID, 10))
	return c.get(ctx, "movie_details", "/subject/detail", params)
}

// SeriesDetails returns details for a series subject.
func (c *HTTPClient) SeriesDetails(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("subjectId", strconv.FormatInt(subjectID, 10))
	return c.get(ctx, "series_details", "/subject/detail", params)
}

// MovieStreamFiles returns the stream links for a movie. Movies use
// season/episode 0 upstream.
func (c *HTTPClient) MovieStreamFiles(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("subjectId", strconv.FormatInt(subjectID, 10))
	params.Set("se", "0")
	params.Set("ep", "0")
	return c.get(ctx, "movie_stream", "/subject/play", params)
}

// SeriesStreamFiles returns the stream links for one episode of a series.
func (c *HTTPClient) SeriesStreamFiles(ctx context.Context, subjectID int64, season, episode int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("subjectId", strconv.FormatInt(subjectID, 10))
	params.Set("se", strconv.Itoa(season))
	params.Set("ep", strconv.Itoa(episode))
	return c.get(ctx, "series_stream", "/subject/play", params)
}
