// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/mock"
	"github.com/MKhiriev/frontwall-client/internal/store"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLoginPath = "/auth/login"

type authMocks struct {
	api       *mock.MockAPIClient
	transport *mock.MockTransport
	sessions  *mock.MockSessionStore
}

func newTestAuthService(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		api:       mock.NewMockAPIClient(ctrl),
		transport: mock.NewMockTransport(ctrl),
		sessions:  mock.NewMockSessionStore(ctrl),
	}
	svc := NewAuthService(m.api, m.transport, m.sessions, testLoginPath, logger.Nop()).(*authService)
	return svc, m
}

// respondWith makes a mocked Post/Get decode v into its out argument.
func respondWith[T any](v T) func(out any) {
	return func(out any) {
		if p, ok := out.(*T); ok {
			*p = v
		}
	}
}

func TestAuthService_SetupRequired(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.api.EXPECT().Get(ctx, setupRequiredPath, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			respondWith(models.SetupStatus{SetupRequired: true})(out)
			return nil
		})

	required, err := svc.SetupRequired(ctx)
	require.NoError(t, err)
	assert.True(t, required)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	err := svc.Login(context.Background(), models.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.Setup(context.Background(), models.Credentials{Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.Setup(context.Background(), models.Credentials{Username: "admin", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	token, expiresAt, err := utils.GenerateAccessToken("frontwall", "admin", 0, 15*time.Minute, "key")
	require.NoError(t, err)
	cookies := []*http.Cookie{{Name: "ws_refresh", Value: "r1", Path: "/auth"}}
	creds := models.Credentials{Username: "admin", Password: "password1"}

	gomock.InOrder(
		m.transport.EXPECT().SetToken(""),
		m.transport.EXPECT().ReplaceCookies(gomock.Nil()).Return(nil),
		m.api.EXPECT().Post(ctx, testLoginPath, creds, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, out any) error {
				respondWith(models.TokenResponse{AccessToken: token})(out)
				return nil
			}),
		m.transport.EXPECT().SetToken(token),
		m.api.EXPECT().ResetRedirect(),
	)
	m.transport.EXPECT().Token().Return(token)
	m.transport.EXPECT().Cookies().Return(cookies)
	m.sessions.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, "admin", s.Username)
			assert.Equal(t, token, s.AccessToken)
			assert.WithinDuration(t, expiresAt, s.ExpiresAt, time.Second)
			require.Len(t, s.Cookies, 1)
			assert.Equal(t, "r1", s.Cookies[0].Value)
			return nil
		})

	require.NoError(t, svc.Login(ctx, creds))
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.transport.EXPECT().SetToken("")
	m.transport.EXPECT().ReplaceCookies(gomock.Nil()).Return(nil)
	m.api.EXPECT().Post(ctx, testLoginPath, gomock.Any(), gomock.Any()).
		Return(failure(http.StatusUnauthorized, adapter.ErrUnauthorized, detail(app.MsgInvalidCredentials)))

	err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.transport.EXPECT().SetToken("")
	m.transport.EXPECT().ReplaceCookies(gomock.Nil()).Return(nil)
	m.api.EXPECT().Post(ctx, testLoginPath, gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Logout_ServerFailureIsIgnored(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	svc.username = "admin"

	m.api.EXPECT().Post(ctx, logoutPath, nil, nil).Return(failure(0, adapter.ErrTransport, ""))
	m.transport.EXPECT().SetToken("")
	m.transport.EXPECT().ReplaceCookies(gomock.Nil()).Return(nil)
	m.sessions.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, svc.username)
}

func TestAuthService_Logout_ClearFails(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	m.api.EXPECT().Post(ctx, logoutPath, nil, nil).Return(nil)
	m.transport.EXPECT().SetToken("")
	m.transport.EXPECT().ReplaceCookies(gomock.Nil()).Return(nil)
	m.sessions.EXPECT().Clear(ctx).Return(dbErr)

	assert.ErrorIs(t, svc.Logout(ctx), dbErr)
}

func TestAuthService_Me(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.api.EXPECT().Get(ctx, mePath, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			respondWith(models.User{Username: "admin"})(out)
			return nil
		})

	user, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_Me_SessionExpired(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.api.EXPECT().Get(ctx, mePath, gomock.Any()).
		Return(failure(http.StatusUnauthorized, adapter.ErrUnauthorized, detail(app.MsgInvalidRefreshToken)))

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_Restore(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	stored := models.Session{
		Username:    "admin",
		AccessToken: "tok",
		Cookies:     []models.Cookie{{Name: "ws_refresh", Value: "r1", Path: "/auth"}},
	}

	m.sessions.EXPECT().Load(ctx).Return(stored, nil)
	m.transport.EXPECT().SetToken("tok")
	m.transport.EXPECT().ReplaceCookies(gomock.Any()).
		DoAndReturn(func(cookies []*http.Cookie) error {
			require.Len(t, cookies, 1)
			assert.Equal(t, "ws_refresh", cookies[0].Name)
			return nil
		})

	got, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, "admin", svc.username)
}

func TestAuthService_Restore_NotLoggedIn(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.sessions.EXPECT().Load(ctx).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthService_Persist_NoToken(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.transport.EXPECT().Token().Return("")

	assert.ErrorIs(t, svc.Persist(context.Background()), ErrNotLoggedIn)
}

func TestAuthService_Persist_OpaqueToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.transport.EXPECT().Token().Return("not-a-jwt")
	m.transport.EXPECT().Cookies().Return(nil)
	m.sessions.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, "not-a-jwt", s.AccessToken)
			assert.True(t, s.ExpiresAt.IsZero())
			assert.Empty(t, s.Cookies)
			return nil
		})

	require.NoError(t, svc.Persist(ctx))
}
