// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/migrations"
	"github.com/sethvargo/go-retry"
)

// DB is the local SQLite connection shared by the repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

const (
	maxExecAttempts = 3
	execRetryDelay  = 50 * time.Millisecond
)

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs a statement, retrying with exponential backoff while
// the database file is held by another process.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	backoff := retry.WithMaxRetries(maxExecAttempts-1, retry.NewExponential(execRetryDelay))

	attempt := 0
	return retry.DoValue(ctx, backoff, func(ctx context.Context) (sql.Result, error) {
		attempt++
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil && db.classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is busy, retrying statement")
			return nil, retry.RetryableError(err)
		}
		return res, err
	})
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
