// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Session.RefreshPath, "/") ||
		!strings.HasPrefix(cfg.Session.LoginPath, "/") ||
		cfg.Session.RedirectTarget == "" ||
		cfg.Session.RefreshTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.Address == "" || cfg.TokenIssuer == "" {
		return ErrInvalidDevServerConfigs
	}

	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return ErrInvalidDevServerConfigs
	}

	if (cfg.AdminLogin == "") != (cfg.AdminPassword == "") {
		return ErrInvalidDevServerConfigs
	}

	return nil
}
