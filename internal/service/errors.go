// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")

	ErrSetupAlreadyCompleted = errors.New("setup already completed")

	// ErrSessionExpired means the session could not be renewed; the user has
	// to log in again.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrNotLoggedIn means no session has been stored locally.
	ErrNotLoggedIn = errors.New("not logged in")

	ErrSiteNotFound    = errors.New("site not found")
	ErrNoActiveShield  = errors.New("no active shield")
	ErrShieldNotActive = errors.New("shield is not active")

	ErrServerUnavailable = errors.New("server unavailable")
)
