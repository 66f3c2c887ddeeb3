// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrSetupAlreadyCompleted = errors.New("setup already completed")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid access token")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrSiteNotFound          = errors.New("site not found")
	ErrNoActiveShield        = errors.New("no active shield")
	ErrShieldNotActive       = errors.New("shield is not active")
)

// RefreshFailure is returned by [Backend.Refresh] while a failure has been
// injected with [Backend.FailRefresh].
type RefreshFailure struct {
	Status int
}

func (e *RefreshFailure) Error() string {
	return fmt.Sprintf("refresh failure injected with status %d", e.Status)
}
