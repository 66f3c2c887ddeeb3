// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/frontwall-client/models"
)

const (
	sessionsTable = "sessions"
	// the table holds a single row
	sessionRowID = 1
)

var (
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	sessionColumns = []string{"username", "access_token", "expires_at", "cookies", "updated_at"}
)

// sessionRow is the stored form of a session. AccessToken and Cookies may be
// sealed.
type sessionRow struct {
	Username    string
	AccessToken string
	ExpiresAt   time.Time
	Cookies     string
	UpdatedAt   time.Time
}

func newSessionRow(session models.Session) (sessionRow, error) {
	cookies, err := encodeCookies(session.Cookies)
	if err != nil {
		return sessionRow{}, err
	}
	return sessionRow{
		Username:    session.Username,
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		Cookies:     cookies,
		UpdatedAt:   session.UpdatedAt,
	}, nil
}

func buildSaveSessionQuery(row sessionRow) (string, []any, error) {
	var expiresAt any
	if !row.ExpiresAt.IsZero() {
		expiresAt = row.ExpiresAt.UTC()
	}

	return sqlite.
		Insert(sessionsTable).
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, row.Username, row.AccessToken, expiresAt, row.Cookies, row.UpdatedAt.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			access_token = excluded.access_token,
			expires_at = excluded.expires_at,
			cookies = excluded.cookies,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sqlite.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildClearSessionQuery() (string, []any, error) {
	return sqlite.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func encodeCookies(cookies []models.Cookie) (string, error) {
	if len(cookies) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(cookies)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingCookies, err)
	}
	return string(data), nil
}

func decodeCookies(raw string) ([]models.Cookie, error) {
	if raw == "" {
		return nil, nil
	}
	var cookies []models.Cookie
	if err := json.Unmarshal([]byte(raw), &cookies); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingCookies, err)
	}
	return cookies, nil
}
