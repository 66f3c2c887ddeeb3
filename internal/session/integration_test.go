// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/devserver"
	apihttp "github.com/MKhiriev/frontwall-client/internal/handler/http"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	refreshPath = "/auth/refresh"
	loginPath   = "/auth/login"
)

type harness struct {
	backend    *devserver.Backend
	transport  adapter.Transport
	arbitrator *session.Arbitrator
	redirect   *session.RedirectPolicy
	client     *session.Client
	redirects  atomic.Int32
}

// newHarness runs the dev backend in-process and logs a client in.
func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.DevServerConfig{
		Address:      "localhost:0",
		TokenSignKey: "integration-key",
		TokenIssuer:  "frontwall",
		AccessTTL:    time.Minute,
		RefreshTTL:   time.Hour,
	}
	backend, err := devserver.NewBackend(cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(apihttp.NewHandler(backend, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop()).Init())
	t.Cleanup(srv.Close)

	transport, err := adapter.NewHTTPTransport(config.ClientAdapter{
		HTTPAddress:    srv.URL + "/api",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	h := &harness{backend: backend, transport: transport}
	h.redirect = session.NewRedirectPolicy("/login", session.NavigatorFunc(func(string) {
		h.redirects.Add(1)
	}), nil, logger.Nop())
	h.arbitrator = session.NewArbitrator(session.NewTokenRefresher(transport, refreshPath, logger.Nop()), h.redirect, 0, nil, logger.Nop())
	h.client = session.NewClientWith(transport, session.NewClassifier(refreshPath, loginPath), h.arbitrator, h.redirect, logger.Nop())

	var token models.TokenResponse
	require.NoError(t, h.client.Post(context.Background(), "/auth/setup", models.Credentials{Username: "admin", Password: "password1"}, &token))
	transport.SetToken(token.AccessToken)

	return h
}

// fireMe issues n concurrent GET /auth/me calls and returns their errors.
func (h *harness) fireMe(n int) (wait func() []error) {
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var user models.User
			errs[i] = h.client.Get(context.Background(), "/auth/me", &user)
			if errs[i] == nil && user.Username != "admin" {
				errs[i] = errors.New("unexpected user " + user.Username)
			}
		}()
	}
	return func() []error {
		wg.Wait()
		return errs
	}
}

func TestIntegration_ConcurrentExpiryTriggersOneRefresh(t *testing.T) {
	const callers = 25
	h := newHarness(t)

	h.backend.ExpireAccessTokens()
	release := h.backend.HoldRefresh()
	defer release()

	wait := h.fireMe(callers)

	require.Eventually(t, func() bool {
		return h.arbitrator.Refreshing() && h.arbitrator.Pending() == callers-1
	}, 5*time.Second, time.Millisecond, "all callers but the leader should be queued")
	assert.EqualValues(t, 1, h.backend.RefreshCount())

	release()
	for i, err := range wait() {
		assert.NoError(t, err, "caller %d", i)
	}

	assert.EqualValues(t, 1, h.backend.RefreshCount())
	assert.False(t, h.arbitrator.Refreshing())
	assert.Zero(t, h.arbitrator.Pending())
	assert.Zero(t, h.redirects.Load())
}

func TestIntegration_RefreshFailureRedirectsOnce(t *testing.T) {
	const callers = 10
	h := newHarness(t)

	h.backend.ExpireAccessTokens()
	h.backend.FailRefresh(http.StatusUnauthorized)
	release := h.backend.HoldRefresh()

	wait := h.fireMe(callers)
	require.Eventually(t, func() bool {
		return h.arbitrator.Pending() == callers-1
	}, 5*time.Second, time.Millisecond)
	release()

	errs := wait()
	for i, err := range errs {
		require.ErrorIs(t, err, session.ErrRefreshFailed, "caller %d", i)
		assert.Equal(t, http.StatusUnauthorized, adapter.StatusCode(err))
		assert.Same(t, errs[0], err, "every caller sees the same failure")
	}

	assert.EqualValues(t, 1, h.backend.RefreshCount())
	assert.EqualValues(t, 1, h.redirects.Load())
	assert.True(t, h.redirect.Fired())
}

func TestIntegration_SessionSurvivesAfterRefresh(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	var site models.Site
	require.NoError(t, h.client.Post(ctx, "/sites/", models.SiteCreate{Name: "shop", TargetURL: "https://shop.example"}, &site))

	for round := 1; round <= 3; round++ {
		h.backend.ExpireAccessTokens()

		var sites []models.Site
		require.NoError(t, h.client.Get(ctx, "/sites/", &sites))
		assert.Len(t, sites, 1)
		assert.EqualValues(t, round, h.backend.RefreshCount(), "the rotated refresh cookie must keep working")
	}
	assert.Zero(t, h.redirects.Load())
}

func TestIntegration_LoginFailureIsTerminal(t *testing.T) {
	h := newHarness(t)

	err := h.client.Post(context.Background(), loginPath, models.Credentials{Username: "admin", Password: "wrong"}, nil)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Zero(t, h.backend.RefreshCount())
	assert.EqualValues(t, 1, h.redirects.Load())
}

func TestIntegration_LostRefreshCookieEndsSession(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.transport.ReplaceCookies(nil))
	h.backend.ExpireAccessTokens()

	err := h.client.Get(context.Background(), "/auth/me", nil)
	assert.ErrorIs(t, err, session.ErrRefreshFailed)
	assert.EqualValues(t, 1, h.backend.RefreshCount())
	assert.EqualValues(t, 1, h.redirects.Load())
}
