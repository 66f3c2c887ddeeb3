// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", []byte(`{
		"app": {"log_level": "warn"},
		"adapter": {"http_address": "http://json:8000/api", "request_timeout": "3s"},
		"session": {"refresh_path": "/auth/refresh", "refresh_timeout": 2000000000},
		"storage": {"db": {"dsn": "json.db"}},
		"workers": {"poll_interval": "1m"},
		"devserver": {"address": "localhost:9000", "refresh_ttl": "2h"}
	}`))

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "http://json:8000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Session.RefreshTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.PollInterval)
	assert.Equal(t, "localhost:9000", cfg.DevServer.Address)
	assert.Equal(t, 2*time.Hour, cfg.DevServer.RefreshTTL)
}

func TestParseFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", []byte(`
[adapter]
http_address = "http://toml:8000/api"
request_timeout = "4s"

[session]
redirect_target = "/signin"
refresh_timeout = "6s"

[storage.db]
dsn = "toml.db"
`))

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://toml:8000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/signin", cfg.Session.RedirectTarget)
	assert.Equal(t, 6*time.Second, cfg.Session.RefreshTimeout)
	assert.Equal(t, "toml.db", cfg.Storage.DB.DSN)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "config.json", []byte(`{`)))
		assert.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "config.toml", []byte(`[adapter`)))
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "config.json", []byte(`{"workers": {"poll_interval": true}}`)))
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
