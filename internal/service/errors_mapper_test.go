// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
)

func failure(status int, cause error, body string) error {
	return &adapter.Failure{
		Request:    models.NewRequest(http.MethodGet, "/x", nil),
		StatusCode: status,
		Body:       body,
		Err:        cause,
	}
}

func detail(msg string) string {
	return fmt.Sprintf(`{"detail":%q}`, msg)
}

func TestMapAdapterError(t *testing.T) {
	otherErr := errors.New("something else")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"refresh failed", fmt.Errorf("%w: %w", session.ErrRefreshFailed, otherErr), ErrSessionExpired},
		{"refresh aborted", session.ErrRefreshAborted, ErrSessionExpired},
		{"invalid credentials", failure(http.StatusUnauthorized, adapter.ErrUnauthorized, detail(app.MsgInvalidCredentials)), ErrInvalidCredentials},
		{"unauthorized", failure(http.StatusUnauthorized, adapter.ErrUnauthorized, detail(app.MsgNotAuthenticated)), ErrSessionExpired},
		{"setup completed", failure(http.StatusBadRequest, adapter.ErrBadRequest, detail(app.MsgSetupAlreadyCompleted)), ErrSetupAlreadyCompleted},
		{"password too short", failure(http.StatusBadRequest, adapter.ErrBadRequest, detail(app.MsgPasswordTooShort)), ErrPasswordTooShort},
		{"shield not active", failure(http.StatusBadRequest, adapter.ErrBadRequest, detail(app.MsgShieldNotActive)), ErrShieldNotActive},
		{"bad request", failure(http.StatusBadRequest, adapter.ErrBadRequest, "nope"), ErrInvalidDataProvided},
		{"site not found", failure(http.StatusNotFound, adapter.ErrNotFound, detail(app.MsgSiteNotFound)), ErrSiteNotFound},
		{"no active shield", failure(http.StatusNotFound, adapter.ErrNotFound, detail(app.MsgNoActiveShield)), ErrNoActiveShield},
		{"transport", failure(0, adapter.ErrTransport, ""), ErrServerUnavailable},
		{"bad gateway", failure(http.StatusBadGateway, adapter.ErrBadGateway, ""), ErrServerUnavailable},
		{"internal", failure(http.StatusInternalServerError, adapter.ErrInternalServerError, ""), ErrServerUnavailable},
		{"other", otherErr, otherErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err, "original error must stay in the chain")
			}
		})
	}
}

func TestMapAdapterError_UnknownNotFoundKeepsOriginal(t *testing.T) {
	err := failure(http.StatusNotFound, adapter.ErrNotFound, detail("Something else"))
	got := mapAdapterError(err)

	assert.Same(t, err, got)
	assert.NotErrorIs(t, got, ErrSiteNotFound)
}

func TestExtractDetail(t *testing.T) {
	assert.Equal(t, app.MsgSiteNotFound, extractDetail(failure(http.StatusNotFound, adapter.ErrNotFound, detail(app.MsgSiteNotFound))))
	assert.Equal(t, "plain text", extractDetail(failure(http.StatusBadRequest, adapter.ErrBadRequest, "plain text")))
	assert.Empty(t, extractDetail(errors.New("not a failure")))
}
