// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the API address and transport timeout used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the endpoints and limits of the session refresh flow.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background pollers.
	Workers Workers `envPrefix:"WORKERS_"`

	// DevServer holds configuration for the development backend.
	DevServer DevServer `envPrefix:"DEVSERVER_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the CLI command and its operands).
	Args []string
}

// App holds process-level settings.
type App struct {
	// LogLevel is the minimum level written to the log ("debug", "info",
	// "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the CLI log file path. Empty selects a file next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// MetricsAddress is the "host:port" the watch command serves Prometheus
	// metrics on. Empty disables the endpoint.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Adapter holds transport settings for talking to the admin API.
type Adapter struct {
	// HTTPAddress is the API base URL, including the "/api" prefix
	// (e.g. "http://localhost:8000/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the settings of the refresh flow.
type Session struct {
	// RefreshPath is the session-renewal endpoint.
	// Env: SESSION_REFRESH_PATH
	RefreshPath string `env:"REFRESH_PATH"`

	// LoginPath is the primary login endpoint, never recovered.
	// Env: SESSION_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// RedirectTarget is the unauthenticated entry point users are sent to
	// when the session is lost.
	// Env: SESSION_REDIRECT_TARGET
	RedirectTarget string `env:"REDIRECT_TARGET"`

	// RefreshTimeout bounds one refresh exchange. Zero means no timeout.
	// Env: SESSION_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// SessionKey is the passphrase the stored session is sealed with. Empty
	// stores it in plain text. Not settable by flag.
	// Env: STORAGE_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "frontwall-session.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background pollers.
type Workers struct {
	// PollInterval is how often the watch command polls the API.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// DevServer holds configuration for the development backend.
type DevServer struct {
	// Address is the TCP listen address in "host:port" format.
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey signs access tokens. A random key is generated when empty.
	// Env: DEVSERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued access tokens.
	// Env: DEVSERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTTL is the access token lifetime.
	// Env: DEVSERVER_ACCESS_TTL
	AccessTTL time.Duration `env:"ACCESS_TTL"`

	// RefreshTTL is the refresh cookie lifetime.
	// Env: DEVSERVER_REFRESH_TTL
	RefreshTTL time.Duration `env:"REFRESH_TTL"`

	// AdminLogin and AdminPassword pre-create the administrator so that the
	// setup step can be skipped.
	// Env: DEVSERVER_ADMIN_LOGIN, DEVSERVER_ADMIN_PASSWORD
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000/api",
			RequestTimeout: 15 * time.Second,
		},
		Session: Session{
			RefreshPath:    "/auth/refresh",
			LoginPath:      "/auth/login",
			RedirectTarget: "/login",
		},
		Storage: Storage{DB: DB{DSN: "frontwall-session.db"}},
		Workers: Workers{PollInterval: 30 * time.Second},
		DevServer: DevServer{
			Address:     "localhost:8000",
			TokenIssuer: "frontwall",
			AccessTTL:   15 * time.Minute,
			RefreshTTL:  7 * 24 * time.Hour,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (defaults, environment, args, config file).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
