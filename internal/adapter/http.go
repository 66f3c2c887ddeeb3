// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/models"
)

// TraceIDHeader carries [models.Request.ID] to the server.
const TraceIDHeader = "X-Trace-ID"

type httpTransport struct {
	client  *utils.HTTPClient
	baseURL *url.URL
	ids     *utils.UUIDGenerator
	jar     *sessionJar

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-backed [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The client keeps a cookie jar, so cookies set by the server (the
// refresh cookie in particular) are sent back automatically.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	jar, err := newSessionJar()
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	client.SetCookieJar(jar)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpTransport{
		client:  client,
		baseURL: parsed,
		ids:     utils.NewUUIDGenerator(),
		jar:     jar,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Transport]. It assigns a trace ID when req has none,
// serialises req.Body as JSON, attaches the bearer token and cookies, and
// maps any non-2xx answer to a [*Failure].
func (t *httpTransport) Send(ctx context.Context, req models.Request) (*models.Response, error) {
	if req.ID == "" {
		req.ID = t.ids.Generate()
	}

	r := t.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, req.ID)

	if token := t.Token(); token != "" {
		r.SetAuthToken(token)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		t.logger.Debug().
			Err(err).
			Str("request_id", req.ID).
			Str("method", req.Method).
			Str("path", req.Path).
			Bool("retried", req.Retried()).
			Msg("request failed before a response was received")
		return nil, transportFailure(req, err)
	}

	t.logger.Debug().
		Str("request_id", req.ID).
		Str("method", req.Method).
		Str("path", req.Path).
		Bool("retried", req.Retried()).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Send()

	if err = mapHTTPError(req, resp); err != nil {
		return nil, err
	}

	return &models.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		Request:    req,
	}, nil
}

// SetToken implements [Transport]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (t *httpTransport) SetToken(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = strings.TrimSpace(token)
}

// Token implements [Transport].
func (t *httpTransport) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// Cookies implements [Transport].
func (t *httpTransport) Cookies() []*http.Cookie {
	return t.jar.Cookies(t.baseURL)
}

// ReplaceCookies implements [Transport]. It is safe to call while other
// requests are in flight; they see either the old or the new cookies.
func (t *httpTransport) ReplaceCookies(cookies []*http.Cookie) error {
	return t.jar.replace(t.baseURL, cookies)
}
