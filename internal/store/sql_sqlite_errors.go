// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and schema errors.
	NonRetryable ErrorClassification = iota

	// Retryable means the database file was held by another process, e.g. a
	// running watch persisting its session.
	Retryable
)

// ErrorClassificator classifies errors returned by the database driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err as a sqlite3.Error and delegates to
// [ClassifySQLiteError]. Any other error is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps the primary result code of a SQLite error.
// See https://www.sqlite.org/rescode.html.
//
// Retryable codes:
//   - SQLITE_BUSY: another connection holds the write lock
//   - SQLITE_LOCKED: a conflicting lock within the same connection
//
// Everything else, constraint and I/O failures included, is [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}
