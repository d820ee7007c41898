// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"context"
	"sync"

	"github.com/goccy/go-json"

	"github.com/nikiema2006/movixbox/internal/moviebox"
)

// MockClient implements moviebox.Client for handler tests. Each method
// delegates to the corresponding func field when set and otherwise
// returns a default payload. Calls records invoked method names in order.
type MockClient struct {
	mu    sync.Mutex
	Calls []string

	PingFunc             func(ctx context.Context) error
	HomepageFunc         func(ctx context.Context) (json.RawMessage, error)
	TrendingFunc         func(ctx context.Context, page, perPage int) (json.RawMessage, error)
	PopularSearchesFunc  func(ctx context.Context) (json.RawMessage, error)
	SearchFunc           func(ctx context.Context, query string, subjectType, page, perPage int) (json.RawMessage, error)
	MovieDetailsFunc     func(ctx context.Context, subjectID int64) (json.RawMessage, error)
	SeriesDetailsFunc    func(ctx context.Context, subjectID int64) (json.RawMessage, error)
	MovieStreamFunc      func(ctx context.Context, subjectID int64) (json.RawMessage, error)
	SeriesStreamFunc     func(ctx context.Context, subjectID int64, season, episode int) (json.RawMessage, error)
}

var _ moviebox.Client = (*MockClient)(nil)

// defaultPayload is returned when no func field is set.
var defaultPayload = json.RawMessage(`{"mock":true}`)

func (m *MockClient) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
}

func (m *MockClient) Ping(ctx context.Context) error {
	m.record("Ping")
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockClient) Homepage(ctx context.Context) (json.RawMessage, error) {
	m.record("Homepage")
	if m.HomepageFunc != nil {
		return m.HomepageFunc(ctx)
	}
	return defaultPayload, nil
}

func (m *MockClient) Trending(ctx context.Context, page, perPage int) (json.RawMessage, error) {
	m.record("Trending")
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, page, perPage)
	}
	return defaultPayload, nil
}

func (m *MockClient) PopularSearches(ctx context.Context) (json.RawMessage, error) {
	m.record("PopularSearches")
	if m.PopularSearchesFunc != nil {
		return m.PopularSearchesFunc(ctx)
	}
	return defaultPayload, nil
}

func (m *MockClient) Search(ctx context.Context, query string, subjectType, page, perPage int) (json.RawMessage, error) {
	m.record("Search")
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, subjectType, page, perPage)
	}
	return defaultPayload, nil
}

func (m *MockClient) MovieDetails(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	m.record("MovieDetails")
	if m.MovieDetailsFunc != nil {
		return m.MovieDetailsFunc(ctx, subjectID)
	}
	return defaultPayload, nil
}

func (m *MockClient) SeriesDetails(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	m.record("SeriesDetails")
	if m.SeriesDetailsFunc != nil {
		return m.SeriesDetailsFunc(ctx, subjectID)
	}
	return defaultPayload, nil
}

func (m *MockClient) MovieStreamFiles(ctx context.Context, subjectID int64) (json.RawMessage, error) {
	m.record("MovieStreamFiles")
	if m.MovieStreamFunc != nil {
		return m.MovieStreamFunc(ctx, subjectID)
	}
	return defaultPayload, nil
}

func (m *MockClient) SeriesStreamFiles(ctx context.Context, subjectID int64, season, episode int) (json.RawMessage, error) {
	m.record("SeriesStreamFiles")
	if m.SeriesStreamFunc != nil {
		return m.SeriesStreamFunc(ctx, subjectID, season, episode)
	}
	return defaultPayload, nil
}

// CalledOnce reports whether exactly the named method was called.
func (m *MockClient) CalledOnce(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls) == 1 && m.Calls[0] == name
}
