// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientStorages_SQLiteRoundTrip runs the session store against a real
// SQLite file, including the embedded migrations.
func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = storages.Sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	first := models.Session{
		Username:    "admin",
		AccessToken: "first",
		ExpiresAt:   time.Now().Add(time.Minute).UTC().Truncate(time.Second),
		Cookies:     []models.Cookie{{Name: "ws_refresh", Value: "r1", Path: "/"}},
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, storages.Sessions.Save(ctx, first))

	second := first
	second.AccessToken = "second"
	second.ExpiresAt = time.Time{}
	require.NoError(t, storages.Sessions.Save(ctx, second))

	loaded, err := storages.Sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", loaded.Username)
	assert.Equal(t, "second", loaded.AccessToken)
	assert.True(t, loaded.ExpiresAt.IsZero())
	assert.Equal(t, first.Cookies, loaded.Cookies)
	assert.True(t, first.UpdatedAt.Equal(loaded.UpdatedAt))

	require.NoError(t, storages.Sessions.Clear(ctx))
	require.NoError(t, storages.Sessions.Clear(ctx))
	_, err = storages.Sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestClientStorages_SealedSession(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}, SessionKey: "local passphrase"}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	session := models.Session{
		Username:    "admin",
		AccessToken: "access",
		Cookies:     []models.Cookie{{Name: "ws_refresh", Value: "r1", Path: "/"}},
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, storages.Sessions.Save(ctx, session))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	loaded, err := reopened.Sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, session.Cookies, loaded.Cookies)
	require.NoError(t, reopened.Close())

	cfg.SessionKey = ""
	plain, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer plain.Close()
	_, err = plain.Sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionKeyRequired)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
