// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
)

// TokenRefresher renews the session with a bodiless POST to the refresh
// endpoint. The exchange goes straight to the transport, so its own 401 never
// re-enters the recovery flow. When the server answers with a new access
// token, it replaces the one held by the transport; a bare 2xx counts as
// success because the renewed credentials may live in cookies only.
type TokenRefresher struct {
	transport AuthTransport
	path      string
	logger    *logger.Logger
}

// NewTokenRefresher returns a Refresher posting to path through transport.
func NewTokenRefresher(transport AuthTransport, path string, log *logger.Logger) *TokenRefresher {
	return &TokenRefresher{transport: transport, path: path, logger: log}
}

// Refresh implements [Refresher].
func (r *TokenRefresher) Refresh(ctx context.Context) error {
	resp, err := r.transport.Send(ctx, models.NewRequest(http.MethodPost, r.path, nil))
	if err != nil {
		return err
	}

	var token models.TokenResponse
	err = resp.Decode(&token)
	switch {
	case err == nil && token.AccessToken != "":
		r.transport.SetToken(token.AccessToken)
	case err != nil && !errors.Is(err, models.ErrEmptyResponseBody):
		// the cookies may still carry the renewed session
		r.logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("unreadable refresh response body, keeping current token")
	}

	return nil
}
