// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package moviebox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/nikiema2006/movixbox/internal/config"
)

// newTestClient points an HTTPClient at a fake mirror.
func newTestClient(serverURL string) *HTTPClient {
	return NewHTTPClient(&config.MovieBoxConfig{
		Host:    serverURL,
		Timeout: 5 * time.Second,
	})
}

// okEnvelope writes a successful MovieBox envelope around data.
func okEnvelope(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"code":0,"message":"ok","data":` + data + `}`))
}

func TestHomepageUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotUA, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		okEnvelope(w, `{"sections":[1,2,3]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	data, err := client.Homepage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/wefeed-h5-bff/web/home" {
		t.Errorf("unexpected upstream path %q", gotPath)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("expected a browser User-Agent, got %q", gotUA)
	}
	if gotReferer != server.URL+"/" {
		t.Errorf("expected Referer %q, got %q", server.URL+"/", gotReferer)
	}
	if string(data) != `{"sections":[1,2,3]}` {
		t.Errorf("expected raw data payload, got %s", data)
	}
}

func TestForbiddenMapsToSentinel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Homepage(context.Background())

	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNon200WrapsUpstreamError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "mirror says no", tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.Homepage(context.Background())

			var upErr *UpstreamError
			if !errors.As(err, &upErr) {
				t.Fatalf("expected *UpstreamError, got %v", err)
			}
			if upErr.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, upErr.StatusCode)
			}
			if errors.Is(err, ErrForbidden) {
				t.Error("non-403 must not match ErrForbidden")
			}
		})
	}
}

func TestEnvelopeAPIErrorCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":40001,"message":"subject not found","data":null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.MovieDetails(context.Background(), 123)

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if !strings.Contains(upErr.Message, "40001") || !strings.Contains(upErr.Message, "subject not found") {
		t.Errorf("expected API code and message in error, got %q", upErr.Message)
	}
}

func TestMalformedBodyWrapsUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Homepage(context.Background())

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if !strings.Contains(upErr.Message, "decode") {
		t.Errorf("expected a decode failure message, got %q", upErr.Message)
	}
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-blocked
		okEnvelope(w, "{}")
	}))
	defer server.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := newTestClient(server.URL)
	_, err := client.Homepage(ctx)

	if err == nil {
		t.Fatal("expected an error after context deadline")
	}
	if errors.Is(err, ErrForbidden) {
		t.Error("cancellation must not look like a 403")
	}
}

func TestQueryParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(c *HTTPClient) error
		wantPath   string
		wantParams url.Values
	}{
		{
			name: "trending",
			call: func(c *HTTPClient) error {
				_, err := c.Trending(context.Background(), 2, 24)
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/trending",
			wantParams: url.Values{"page": {"2"}, "perPage": {"24"}},
		},
		{
			name: "popular searches",
			call: func(c *HTTPClient) error {
				_, err := c.PopularSearches(context.Background())
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/popular-search",
			wantParams: url.Values{},
		},
		{
			name: "search",
			call: func(c *HTTPClient) error {
				_, err := c.Search(context.Background(), "blade runner", SubjectTypeMovie, 1, 24)
				return err
			},
			wantPath: "/wefeed-h5-bff/web/subject/search",
			wantParams: url.Values{
				"keyword":     {"blade runner"},
				"subjectType": {"2"},
				"page":        {"1"},
				"perPage":     {"24"},
			},
		},
		{
			name: "movie details",
			call: func(c *HTTPClient) error {
				_, err := c.MovieDetails(context.Background(), 9000123)
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/detail",
			wantParams: url.Values{"subjectId": {"9000123"}},
		},
		{
			name: "series details",
			call: func(c *HTTPClient) error {
				_, err := c.SeriesDetails(context.Background(), 9000123)
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/detail",
			wantParams: url.Values{"subjectId": {"9000123"}},
		},
		{
			name: "movie stream pins season and episode to zero",
			call: func(c *HTTPClient) error {
				_, err := c.MovieStreamFiles(context.Background(), 555)
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/play",
			wantParams: url.Values{"subjectId": {"555"}, "se": {"0"}, "ep": {"0"}},
		},
		{
			name: "series stream carries episode selection",
			call: func(c *HTTPClient) error {
				_, err := c.SeriesStreamFiles(context.Background(), 555, 3, 11)
				return err
			},
			wantPath:   "/wefeed-h5-bff/web/subject/play",
			wantParams: url.Values{"subjectId": {"555"}, "se": {"3"}, "ep": {"11"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPath string
			var gotParams url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotParams = r.URL.Query()
				okEnvelope(w, "{}")
			}))
			defer server.Close()

			if err := tt.call(newTestClient(server.URL)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, gotPath)
			}
			for key, want := range tt.wantParams {
				if got := gotParams.Get(key); got != want[0] {
					t.Errorf("param %s: expected %q, got %q", key, want[0], got)
				}
			}
			if len(gotParams) != len(tt.wantParams) {
				t.Errorf("expected %d params, got %v", len(tt.wantParams), gotParams)
			}
		})
	}
}

func TestPingReportsReachability(t *testing.T) {
	t.Parallel()

	t.Run("reachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			okEnvelope(w, "{}")
		}))
		defer server.Close()

		if err := newTestClient(server.URL).Ping(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // deliberately closed before use

		err := newTestClient(server.URL).Ping(context.Background())
		var upErr *UpstreamError
		if !errors.As(err, &upErr) {
			t.Fatalf("expected *UpstreamError for a dead mirror, got %v", err)
		}
	})
}

func TestUpstreamErrorString(t *testing.T) {
	t.Parallel()

	err := &UpstreamError{Operation: "search", StatusCode: 503, Message: "down"}
	msg := err.Error()
	for _, want := range []string{"search", "503", "down"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

// decode check for the envelope type itself, since everything else trusts it.
func TestEnvelopeDecoding(t *testing.T) {
	t.Parallel()

	var env envelope
	if err := json.Unmarshal([]byte(`{"code":0,"message":"ok","data":{"a":1}}`), &env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Code != 0 || env.Message != "ok" || string(env.Data) != `{"a":1}` {
		t.Errorf("unexpected envelope: %+v", env)
	}
}
