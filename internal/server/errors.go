// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errEmptyAddress = errors.New("empty server address")
	errNilHandler   = errors.New("nil server handler")
)
