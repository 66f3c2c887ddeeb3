// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrEmptySiteName      = errors.New("site name is required")
	ErrInvalidTargetURL   = errors.New("target url must be an absolute http(s) url")
	ErrInvalidCrawl       = errors.New("crawl settings must be positive")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrIncompleteSiteAuth = errors.New("auth user and password must be set together")
)
