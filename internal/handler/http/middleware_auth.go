// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The access token is taken from the "Authorization: Bearer" header, or from
// the [AccessCookie] when the header is absent. On success the
// administrator's username is stored in the request context under
// [utils.UsernameCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - no token is presented at all ([ErrEmptyAuthorizationHeader]);
//   - the header is not a bearer token ([utils.ErrInvalidAuthorizationHeader]);
//   - the token is expired, badly signed or from an older signing epoch;
//   - the token names an administrator that does not exist.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := accessTokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without usable access token")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
			return
		}

		username, err := h.backend.Authenticate(tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}

	if c, err := r.Cookie(AccessCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	return "", ErrEmptyAuthorizationHeader
}
