// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the request transport used to talk to the
// FrontWall admin API.
//
// [Transport] performs exactly one network exchange per [Transport.Send] call
// and never retries. Credentials are ambient: the bearer token set via
// [Transport.SetToken] and the cookie jar (which carries the refresh cookie)
// are attached to every request automatically, so the same
// [models.Request] can be replayed after the session has been renewed.
//
// Every unsuccessful call is returned as a [*Failure] carrying the original
// request and status. Status codes are mapped to the sentinels in errors.go
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/frontwall-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport sends API requests and holds the ambient session credentials.
type Transport interface {
	// Send performs one exchange for req. A 2xx answer is returned as a
	// [models.Response]; everything else as a [*Failure].
	Send(ctx context.Context, req models.Request) (*models.Response, error)

	// SetToken stores the bearer token attached to subsequent requests. An
	// empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently held by the transport.
	Token() string

	// Cookies returns the cookies the jar would send to the API base URL.
	Cookies() []*http.Cookie

	// ReplaceCookies discards the jar and loads cookies for the API base URL
	// into a fresh one. A nil slice leaves the jar empty.
	ReplaceCookies(cookies []*http.Cookie) error
}
