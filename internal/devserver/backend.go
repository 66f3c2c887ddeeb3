// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver implements the in-memory state of a FrontWall-compatible
// admin backend: one administrator, short-lived JWT access tokens, rotating
// opaque refresh tokens, sites and the shield.
//
// It exists for local development and end-to-end tests of the client. Test
// hooks ([Backend.ExpireAccessTokens], [Backend.FailRefresh],
// [Backend.HoldRefresh]) let a test drive the client into the refresh path
// on demand.
package devserver

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/internal/validators"
)

const (
	defaultShieldPort = 8080
	refreshTokenSize  = 32
)

type admin struct {
	username     string
	passwordHash []byte
	createdAt    time.Time
}

type refreshEntry struct {
	username  string
	expiresAt time.Time
}

// Tokens is the credential pair issued by setup, login and refresh.
type Tokens struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Backend is safe for concurrent use.
type Backend struct {
	cfg       config.DevServerConfig
	ids       *utils.UUIDGenerator
	validator validators.Validator

	mu        sync.Mutex
	admin     *admin
	epoch     int64
	refreshes map[string]refreshEntry

	sites      map[string]*site
	siteOrder  []string
	shieldSite string
	learnMode  bool

	refreshCount  atomic.Int64
	refreshStatus atomic.Int32
	refreshGate   atomic.Pointer[chan struct{}]

	logger *logger.Logger
}

// NewBackend returns an empty backend. When cfg names an administrator it is
// created up front, so setup is not required.
func NewBackend(cfg config.DevServerConfig, log *logger.Logger) (*Backend, error) {
	b := &Backend{
		cfg:       cfg,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewSiteValidator(),
		refreshes: make(map[string]refreshEntry),
		sites:     make(map[string]*site),
		logger:    log,
	}

	if cfg.AdminLogin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing admin password: %w", err)
		}
		b.admin = &admin{username: cfg.AdminLogin, passwordHash: hash, createdAt: time.Now().UTC()}
		log.Info().Str("username", cfg.AdminLogin).Msg("administrator seeded from config")
	}

	return b, nil
}

// RefreshCount returns how many refresh exchanges reached the backend,
// including failed ones.
func (b *Backend) RefreshCount() int64 {
	return b.refreshCount.Load()
}

// ExpireAccessTokens invalidates every access token issued so far. Refresh
// tokens stay valid.
func (b *Backend) ExpireAccessTokens() {
	b.mu.Lock()
	b.epoch++
	b.mu.Unlock()
	b.logger.Debug().Msg("access tokens expired")
}

// FailRefresh makes every following refresh answer with status. Zero restores
// normal behaviour.
func (b *Backend) FailRefresh(status int) {
	b.refreshStatus.Store(int32(status))
}

// HoldRefresh blocks every following refresh until the returned release
// function is called. Release is idempotent.
func (b *Backend) HoldRefresh() (release func()) {
	gate := make(chan struct{})
	b.refreshGate.Store(&gate)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.refreshGate.CompareAndSwap(&gate, nil)
			close(gate)
		})
	}
}

func (b *Backend) issue(username string) (Tokens, error) {
	access, accessExp, err := utils.GenerateAccessToken(b.cfg.TokenIssuer, username, b.epoch, b.cfg.AccessTTL, b.cfg.TokenSignKey)
	if err != nil {
		return Tokens{}, err
	}

	buf := make([]byte, refreshTokenSize)
	if _, err = rand.Read(buf); err != nil {
		return Tokens{}, fmt.Errorf("error generating refresh token: %w", err)
	}
	refresh := hex.EncodeToString(buf)
	refreshExp := time.Now().Add(b.cfg.RefreshTTL)

	b.refreshes[b.refreshKey(refresh)] = refreshEntry{username: username, expiresAt: refreshExp}

	return Tokens{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// refreshKey is the stored form of a refresh token; the raw value is never
// kept.
func (b *Backend) refreshKey(token string) string {
	return utils.HashString(token, b.cfg.TokenSignKey)
}
