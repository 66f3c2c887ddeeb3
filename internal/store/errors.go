// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionStore.Load] when no session
// has been saved (or it has been cleared).
var ErrLocalSessionNotFound = errors.New("local session not found")

var (
	// ErrSessionKeyRequired is returned when the stored session is sealed but
	// no session key is configured.
	ErrSessionKeyRequired = errors.New("stored session is encrypted, set STORAGE_SESSION_KEY")

	// ErrSealingSession is returned when a session value cannot be sealed or
	// opened, usually because the session key changed.
	ErrSealingSession = errors.New("failed to seal session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan session row")

	// ErrEncodingCookies is returned when the cookie snapshot cannot be
	// serialised or parsed.
	ErrEncodingCookies = errors.New("failed to encode session cookies")
)
