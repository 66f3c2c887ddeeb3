// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the CLI session between invocations in a local
// SQLite database.
package store

import (
	"context"

	"github.com/MKhiriev/frontwall-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore keeps at most one session: the access token, its expiry and
// the cookie jar snapshot of the last login.
type SessionStore interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session models.Session) error
	// Load returns the stored session or [ErrLocalSessionNotFound].
	Load(ctx context.Context) (models.Session, error)
	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
