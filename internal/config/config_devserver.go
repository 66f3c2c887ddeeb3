// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// DevServerConfig is the configuration view of the development backend.
type DevServerConfig struct {
	LogLevel string

	Address       string
	TokenSignKey  string
	TokenIssuer   string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	AdminLogin    string
	AdminPassword string
}

// GetDevServerConfig builds and validates the dev server configuration.
// When no token signing key is configured, a random one is generated, so
// access tokens do not survive a restart.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		LogLevel:      cfg.App.LogLevel,
		Address:       cfg.DevServer.Address,
		TokenSignKey:  cfg.DevServer.TokenSignKey,
		TokenIssuer:   cfg.DevServer.TokenIssuer,
		AccessTTL:     cfg.DevServer.AccessTTL,
		RefreshTTL:    cfg.DevServer.RefreshTTL,
		AdminLogin:    cfg.DevServer.AdminLogin,
		AdminPassword: cfg.DevServer.AdminPassword,
	}

	if devCfg.TokenSignKey == "" {
		if devCfg.TokenSignKey, err = randomKey(32); err != nil {
			return nil, fmt.Errorf("error generating token sign key: %w", err)
		}
	}

	if err = devCfg.validate(); err != nil {
		return nil, err
	}

	return devCfg, nil
}

func randomKey(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
