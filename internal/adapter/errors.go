// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors carried by [Failure.Err]. Callers match them with
// [errors.Is] on the error returned by [Transport.Send].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	// ErrTransport marks failures where no HTTP response was received
	// (connection refused, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")
)
