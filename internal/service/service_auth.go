// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/store"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/internal/validators"
	"github.com/MKhiriev/frontwall-client/models"
)

const (
	setupRequiredPath = "/auth/setup-required"
	setupPath         = "/auth/setup"
	logoutPath        = "/auth/logout"
	mePath            = "/auth/me"
)

type authService struct {
	api       APIClient
	transport adapter.Transport
	sessions  store.SessionStore
	loginPath string
	validator validators.Validator
	logger    *logger.Logger

	username string
}

// NewAuthService returns the [AuthService]. transport is the same transport
// the api client sends through; it holds the token and the cookie jar.
func NewAuthService(api APIClient, transport adapter.Transport, sessions store.SessionStore, loginPath string, log *logger.Logger) AuthService {
	return &authService{
		api:       api,
		transport: transport,
		sessions:  sessions,
		loginPath: loginPath,
		validator: validators.NewSiteValidator(),
		logger:    log,
	}
}

func (a *authService) SetupRequired(ctx context.Context) (bool, error) {
	var status models.SetupStatus
	if err := a.api.Get(ctx, setupRequiredPath, &status); err != nil {
		return false, mapAdapterError(err)
	}
	return status.SetupRequired, nil
}

func (a *authService) Setup(ctx context.Context, credentials models.Credentials) error {
	err := a.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldNewPassword)
	if errors.Is(err, validators.ErrPasswordTooShort) {
		return fmt.Errorf("%w: %w", ErrPasswordTooShort, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.authenticate(ctx, setupPath, credentials)
}

func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.authenticate(ctx, a.loginPath, credentials)
}

func (a *authService) authenticate(ctx context.Context, path string, credentials models.Credentials) error {
	// a previous session must not leak into the new one
	a.transport.SetToken("")
	if err := a.transport.ReplaceCookies(nil); err != nil {
		return fmt.Errorf("error resetting cookies: %w", err)
	}

	var token models.TokenResponse
	if err := a.api.Post(ctx, path, credentials, &token); err != nil {
		return mapAdapterError(err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrInvalidDataProvided)
	}

	a.transport.SetToken(token.AccessToken)
	a.api.ResetRedirect()
	a.username = credentials.Username

	a.logger.Info().Str("username", credentials.Username).Msg("logged in")
	return a.Persist(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Post(ctx, logoutPath, nil, nil); err != nil {
		a.logger.Warn().Err(err).Msg("server logout failed")
	}

	a.transport.SetToken("")
	if err := a.transport.ReplaceCookies(nil); err != nil {
		return fmt.Errorf("error resetting cookies: %w", err)
	}
	a.username = ""

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing local session: %w", err)
	}
	return nil
}

func (a *authService) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := a.api.Get(ctx, mePath, &user); err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading local session: %w", err)
	}

	a.transport.SetToken(session.AccessToken)
	if err = a.transport.ReplaceCookies(models.HTTPCookies(session.Cookies)); err != nil {
		return models.Session{}, fmt.Errorf("error restoring cookies: %w", err)
	}
	a.username = session.Username

	return session, nil
}

func (a *authService) Persist(ctx context.Context) error {
	token := a.transport.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	session := models.Session{
		Username:    a.username,
		AccessToken: token,
		Cookies:     models.CookiesFromHTTP(a.transport.Cookies()),
		UpdatedAt:   time.Now(),
	}
	if expiresAt, err := utils.AccessTokenExpiry(token); err == nil {
		session.ExpiresAt = expiresAt
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("error saving local session: %w", err)
	}
	return nil
}
