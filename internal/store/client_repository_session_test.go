// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/frontwall-client/internal/crypto"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSessionRepo(t *testing.T) (SessionStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}
	return NewLocalSessionRepository(db, nil, logger.Nop()), mock
}

func TestLocalSessionRepository_Save(t *testing.T) {
	repo, mock := newMockSessionRepo(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(sessionRowID, "admin", "tok", sqlmock.AnyArg(), "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(ctx, models.Session{Username: "admin", AccessToken: "tok", ExpiresAt: time.Now(), UpdatedAt: time.Now()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Save_Error(t *testing.T) {
	repo, mock := newMockSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).WillReturnError(sql.ErrConnDone)

	err := repo.Save(context.Background(), models.Session{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestLocalSessionRepository_Save_RetriesWhileBusy(t *testing.T) {
	repo, mock := newMockSessionRepo(t)
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).WillReturnError(busy)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), models.Session{Username: "admin"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Clear_GivesUpWhenStillBusy(t *testing.T) {
	repo, mock := newMockSessionRepo(t)
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	for range maxExecAttempts {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions")).WillReturnError(busy)
	}

	err := repo.Clear(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Save_CancelledWhileBusy(t *testing.T) {
	repo, mock := newMockSessionRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	// the cancel lands inside the first backoff wait
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
	time.AfterFunc(execRetryDelay/5, cancel)

	err := repo.Save(ctx, models.Session{Username: "admin"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Load(t *testing.T) {
	repo, mock := newMockSessionRepo(t)
	expires := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	updated := expires.Add(-time.Minute)

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("admin", "tok", expires, `[{"name":"ws_refresh","value":"r1","path":"/"}]`, updated)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, access_token, expires_at, cookies, updated_at FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, "tok", session.AccessToken)
	assert.Equal(t, expires, session.ExpiresAt)
	assert.Equal(t, updated, session.UpdatedAt)
	assert.Equal(t, []models.Cookie{{Name: "ws_refresh", Value: "r1", Path: "/"}}, session.Cookies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock := newMockSessionRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLocalSessionRepository_Load_BadCookies(t *testing.T) {
	repo, mock := newMockSessionRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(sessionColumns).AddRow("admin", "tok", nil, "not json", time.Now()),
	)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrEncodingCookies)
}

func TestLocalSessionRepository_Clear(t *testing.T) {
	repo, mock := newMockSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// prefixSealer marks values without real encryption.
type prefixSealer struct{}

func (prefixSealer) Seal(plaintext []byte) (string, error) {
	return crypto.SealedPrefix + string(plaintext), nil
}

func (prefixSealer) Open(sealed string) ([]byte, error) {
	return []byte(strings.TrimPrefix(sealed, crypto.SealedPrefix)), nil
}

func TestLocalSessionRepository_SealedRoundTrip(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	repo := NewLocalSessionRepository(&DB{DB: conn, logger: logger.Nop()}, prefixSealer{}, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(sessionRowID, "admin", crypto.SealedPrefix+"tok", nil, crypto.SealedPrefix+"[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Save(context.Background(), models.Session{Username: "admin", AccessToken: "tok"}))

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(sessionColumns).AddRow("admin", crypto.SealedPrefix+"tok", nil, crypto.SealedPrefix+"[]", time.Now()),
	)
	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", session.AccessToken)
	assert.Empty(t, session.Cookies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSessionRepository_Load_SealedWithoutKey(t *testing.T) {
	repo, mock := newMockSessionRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(sessionColumns).AddRow("admin", crypto.SealedPrefix+"tok", nil, "[]", time.Now()),
	)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionKeyRequired)
}
