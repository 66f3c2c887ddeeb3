// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-trace-id", wantSame: true},
		{name: "missing trace ID is generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, zerolog.Ctx(r.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/sites/", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/sites/"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":7`)
	assert.Contains(t, out, `"trace_id":"trace-1"`)
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, w.size)
}

func TestAccessTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "xyz", want: "abc"},
		{name: "cookie fallback", cookie: "xyz", want: "xyz"},
		{name: "nothing", wantErr: ErrEmptyAuthorizationHeader},
		{name: "not bearer", header: "Basic abc", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "bearer without token", header: "Bearer", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessCookie, Value: tt.cookie})
			}

			got, err := accessTokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
