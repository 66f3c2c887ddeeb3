// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the minimum level written to the client log file.
	LogLevel string
	// LogFile is the client log file path.
	LogFile string
	// MetricsAddress is where the watch command serves metrics, if set.
	MetricsAddress string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds the refresh flow settings of the session client.
type ClientSession struct {
	// RefreshPath is the session-renewal endpoint.
	RefreshPath string
	// LoginPath is the primary login endpoint.
	LoginPath string
	// RedirectTarget is where a lost session sends the user.
	RedirectTarget string
	// RefreshTimeout bounds one refresh exchange; zero disables it.
	RefreshTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionKey seals the stored session when set.
	SessionKey string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the watch pollers run.
	PollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Session contains refresh flow settings.
	Session ClientSession
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Args holds the CLI command and its operands.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:       cfg.App.LogLevel,
			LogFile:        cfg.App.LogFile,
			MetricsAddress: cfg.App.MetricsAddress,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			RefreshPath:    cfg.Session.RefreshPath,
			LoginPath:      cfg.Session.LoginPath,
			RedirectTarget: cfg.Session.RedirectTarget,
			RefreshTimeout: cfg.Session.RefreshTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SessionKey: cfg.Storage.SessionKey,
		},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
		Args:    cfg.Args,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
