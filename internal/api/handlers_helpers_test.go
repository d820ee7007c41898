// MovixBox API - REST facade for the MovieBox streaming catalog
// Copyright 2026 nikiema2006
// SPDX-License-Identifier: MIT
// https://github.com/nikiema2006/movixbox

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nikiema2006/movixbox/internal/models"
)

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		key          string
		defaultValue int
		want         int
		wantErr      bool
	}{
		{"absent uses default", "", "page", 7, 7, false},
		{"present integer", "page=3", "page", 7, 3, false},
		{"negative integer", "page=-2", "page", 7, -2, false},
		{"unparseable is an error", "page=abc", "page", 7, 0, true},
		{"float is an error", "page=1.5", "page", 7, 0, true},
		{"other key ignored", "per_page=9", "page", 7, 7, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := getIntParam(req, tt.key, tt.defaultValue)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"newline escaped", "line1\nline2", "line1\\x0aline2"},
		{"carriage return escaped", "a\rb", "a\\x0db"},
		{"delete escaped", "a\x7fb", "a\\x7fb"},
		{"unicode preserved", "café", "café"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"status":"success"}`))
	b := generateETag([]byte(`{"status":"success"}`))
	c := generateETag([]byte(`{"status":"error"}`))

	if a != b {
		t.Errorf("same input must yield the same ETag: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different inputs should yield different ETags, both %q", a)
	}
	if a == "" {
		t.Error("ETag must not be empty")
	}
}

func TestRespondJSONSetsHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Metadata: models.Metadata{Timestamp: time.Now()},
	})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("expected ETag header")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
