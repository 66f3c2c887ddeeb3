// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/devserver"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/models"
)

const (
	// AccessCookie carries the access token for browser clients.
	AccessCookie = "ws_access"

	// RefreshCookie carries the opaque refresh token.
	RefreshCookie = "ws_refresh"

	cookiePath = "/"
)

func (h *Handler) setupRequired(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.SetupStatus{SetupRequired: h.backend.SetupRequired()}, http.StatusOK)
}

func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	tokens, err := h.backend.Setup(credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", credentials.Username).Msg("administrator created")
	h.writeTokens(w, tokens)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	tokens, err := h.backend.Login(credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("username", credentials.Username).Msg("administrator logged in")
	h.writeTokens(w, tokens)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if c, err := r.Cookie(RefreshCookie); err == nil {
		refreshToken = c.Value
	}

	tokens, err := h.backend.Refresh(r.Context(), refreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Msg("session refreshed")
	h.writeTokens(w, tokens)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(RefreshCookie); err == nil {
		h.backend.Logout(c.Value)
	}

	http.SetCookie(w, expiredCookie(AccessCookie))
	http.SetCookie(w, expiredCookie(RefreshCookie))
	utils.WriteJSON(w, map[string]string{"status": "logged_out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	username, _ := utils.GetUsernameFromContext(r.Context())

	user, err := h.backend.Me(username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// writeTokens answers with the access token in the body and both tokens as
// HttpOnly cookies.
func (h *Handler) writeTokens(w http.ResponseWriter, tokens devserver.Tokens) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookie,
		Value:    tokens.AccessToken,
		Path:     cookiePath,
		Expires:  tokens.AccessExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    tokens.RefreshToken,
		Path:     cookiePath,
		Expires:  tokens.RefreshExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, models.TokenResponse{AccessToken: tokens.AccessToken, TokenType: "bearer"}, http.StatusOK)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return models.Credentials{}, false
	}
	return credentials, true
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	}
}
