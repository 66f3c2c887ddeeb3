// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/frontwall-client/internal/crypto"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
)

type localSessionRepository struct {
	*DB
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewLocalSessionRepository returns the SQLite [SessionStore]. With a non-nil
// sealer the access token and the cookies are stored encrypted.
func NewLocalSessionRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) SessionStore {
	return &localSessionRepository{
		DB:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (l *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	row, err := newSessionRow(session)
	if err != nil {
		return err
	}
	if row.AccessToken, err = l.seal(row.AccessToken); err != nil {
		return err
	}
	if row.Cookies, err = l.seal(row.Cookies); err != nil {
		return err
	}

	query, args, err := buildSaveSessionQuery(row)
	if err != nil {
		l.logger.Err(err).Str("func", "localSessionRepository.Save").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execWithRetry(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Save").
			Str("username", session.Username).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session   models.Session
		expiresAt sql.NullTime
		cookies   sql.NullString
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.Username,
		&session.AccessToken,
		&expiresAt,
		&cookies,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).Str("func", "localSessionRepository.Load").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}
	if session.AccessToken, err = l.open(session.AccessToken); err != nil {
		return models.Session{}, err
	}
	rawCookies, err := l.open(cookies.String)
	if err != nil {
		return models.Session{}, err
	}
	if session.Cookies, err = decodeCookies(rawCookies); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (l *localSessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execWithRetry(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "localSessionRepository.Clear").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) seal(value string) (string, error) {
	if l.sealer == nil || value == "" {
		return value, nil
	}
	sealed, err := l.sealer.Seal([]byte(value))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealingSession, err)
	}
	return sealed, nil
}

// open returns plain values unchanged, so a session saved before a key was
// configured still loads.
func (l *localSessionRepository) open(value string) (string, error) {
	if !crypto.IsSealed(value) {
		return value, nil
	}
	if l.sealer == nil {
		return "", ErrSessionKeyRequired
	}
	plain, err := l.sealer.Open(value)
	if err != nil {
		l.logger.Err(err).Str("func", "localSessionRepository.open").Msg("failed to open sealed session value")
		return "", fmt.Errorf("%w: %w", ErrSealingSession, err)
	}
	return string(plain), nil
}
