// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [DevServerConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid refresh flow settings
	// (for example, an empty refresh path or a negative refresh timeout).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidDevServerConfigs indicates invalid development backend
	// settings (for example, zero token lifetimes).
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
)
