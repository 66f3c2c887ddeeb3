// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// struct is decoded from JSON and TOML.
type StructuredFileConfig struct {
	App struct {
		LogLevel       string `json:"log_level" toml:"log_level"`
		LogFile        string `json:"log_file" toml:"log_file"`
		MetricsAddress string `json:"metrics_address" toml:"metrics_address"`
	} `json:"app,omitempty" toml:"app"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Session struct {
		RefreshPath    string   `json:"refresh_path" toml:"refresh_path"`
		LoginPath      string   `json:"login_path" toml:"login_path"`
		RedirectTarget string   `json:"redirect_target" toml:"redirect_target"`
		RefreshTimeout Duration `json:"refresh_timeout" toml:"refresh_timeout"`
	} `json:"session,omitempty" toml:"session"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
		SessionKey string `json:"session_key" toml:"session_key"`
	} `json:"storage,omitempty" toml:"storage"`

	Workers struct {
		PollInterval Duration `json:"poll_interval" toml:"poll_interval"`
	} `json:"workers,omitempty" toml:"workers"`

	DevServer struct {
		Address       string   `json:"address" toml:"address"`
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		AccessTTL     Duration `json:"access_ttl" toml:"access_ttl"`
		RefreshTTL    Duration `json:"refresh_ttl" toml:"refresh_ttl"`
		AdminLogin    string   `json:"admin_login" toml:"admin_login"`
		AdminPassword string   `json:"admin_password" toml:"admin_password"`
	} `json:"devserver,omitempty" toml:"devserver"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       fileCfg.App.LogLevel,
			LogFile:        fileCfg.App.LogFile,
			MetricsAddress: fileCfg.App.MetricsAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			RefreshPath:    fileCfg.Session.RefreshPath,
			LoginPath:      fileCfg.Session.LoginPath,
			RedirectTarget: fileCfg.Session.RedirectTarget,
			RefreshTimeout: time.Duration(fileCfg.Session.RefreshTimeout),
		},
		Storage: Storage{
			DB:         DB{DSN: fileCfg.Storage.DB.DSN},
			SessionKey: fileCfg.Storage.SessionKey,
		},
		Workers: Workers{
			PollInterval: time.Duration(fileCfg.Workers.PollInterval),
		},
		DevServer: DevServer{
			Address:       fileCfg.DevServer.Address,
			TokenSignKey:  fileCfg.DevServer.TokenSignKey,
			TokenIssuer:   fileCfg.DevServer.TokenIssuer,
			AccessTTL:     time.Duration(fileCfg.DevServer.AccessTTL),
			RefreshTTL:    time.Duration(fileCfg.DevServer.RefreshTTL),
			AdminLogin:    fileCfg.DevServer.AdminLogin,
			AdminPassword: fileCfg.DevServer.AdminPassword,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" (JSON and TOML) and from JSON numbers (nanoseconds).
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
