// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/frontwall-client/internal/utils"
	"github.com/MKhiriev/frontwall-client/internal/validators"
	"github.com/MKhiriev/frontwall-client/models"
)

// SetupRequired reports whether no administrator exists yet.
func (b *Backend) SetupRequired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.admin == nil
}

// Setup creates the administrator and logs it in. It fails once an
// administrator exists.
func (b *Backend) Setup(credentials models.Credentials) (Tokens, error) {
	err := b.validator.Validate(context.Background(), credentials, validators.FieldUsername, validators.FieldNewPassword)
	if errors.Is(err, validators.ErrPasswordTooShort) {
		return Tokens{}, ErrPasswordTooShort
	}
	if err != nil {
		return Tokens{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return Tokens{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.admin != nil {
		return Tokens{}, ErrSetupAlreadyCompleted
	}
	b.admin = &admin{username: credentials.Username, passwordHash: hash, createdAt: time.Now().UTC()}

	return b.issue(credentials.Username)
}

// Login checks credentials and issues a fresh token pair.
func (b *Backend) Login(credentials models.Credentials) (Tokens, error) {
	b.mu.Lock()
	current := b.admin
	b.mu.Unlock()

	if current == nil || current.username != credentials.Username {
		return Tokens{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(current.passwordHash, []byte(credentials.Password)); err != nil {
		return Tokens{}, ErrInvalidCredentials
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issue(credentials.Username)
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// consumed, so replaying it fails.
func (b *Backend) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	b.refreshCount.Add(1)

	if gate := b.refreshGate.Load(); gate != nil {
		select {
		case <-*gate:
		case <-ctx.Done():
			return Tokens{}, ctx.Err()
		}
	}

	if status := b.refreshStatus.Load(); status != 0 {
		return Tokens{}, &RefreshFailure{Status: int(status)}
	}

	if refreshToken == "" {
		return Tokens{}, ErrInvalidRefreshToken
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := b.refreshKey(refreshToken)
	entry, ok := b.refreshes[key]
	if !ok {
		return Tokens{}, ErrInvalidRefreshToken
	}
	delete(b.refreshes, key)

	if time.Now().After(entry.expiresAt) {
		return Tokens{}, ErrInvalidRefreshToken
	}
	if b.admin == nil || b.admin.username != entry.username {
		return Tokens{}, ErrUserNotFound
	}

	return b.issue(entry.username)
}

// Logout revokes refreshToken. Unknown tokens are ignored.
func (b *Backend) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.refreshes, b.refreshKey(refreshToken))
}

// Authenticate validates an access token and returns its subject.
func (b *Backend) Authenticate(accessToken string) (string, error) {
	claims, err := utils.ValidateAccessToken(accessToken, b.cfg.TokenSignKey, b.cfg.TokenIssuer)
	if err != nil {
		return "", ErrInvalidToken
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if claims.Epoch != b.epoch {
		return "", ErrInvalidToken
	}
	if b.admin == nil || b.admin.username != claims.Subject {
		return "", ErrUserNotFound
	}

	return claims.Subject, nil
}

// Me returns the administrator named username.
func (b *Backend) Me(username string) (models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.admin == nil || b.admin.username != username {
		return models.User{}, ErrUserNotFound
	}
	return models.User{Username: b.admin.username, CreatedAt: b.admin.createdAt}, nil
}
