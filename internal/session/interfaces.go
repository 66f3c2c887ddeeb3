// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"time"

	"github.com/MKhiriev/frontwall-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Sender performs one network exchange per call and never retries.
// adapter.Transport satisfies it.
type Sender interface {
	Send(ctx context.Context, req models.Request) (*models.Response, error)
}

// AuthTransport is a [Sender] that also holds the bearer token.
type AuthTransport interface {
	Sender
	SetToken(token string)
}

// Refresher runs the session-renewal exchange.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Navigator performs the hard navigation to the unauthenticated entry point.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to [Navigator].
type NavigatorFunc func(target string)

// Navigate calls f(target).
func (f NavigatorFunc) Navigate(target string) {
	f(target)
}

// Recorder observes refresh episodes. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	// EpisodeStarted is called when a leader starts a refresh exchange.
	EpisodeStarted()
	// FollowerQueued is called for each caller suspended behind a leader.
	FollowerQueued()
	// EpisodeSettled is called once per episode with the refresh outcome,
	// the number of released followers and the episode duration.
	EpisodeSettled(err error, followers int, elapsed time.Duration)
	// SessionLost is called when the redirect actually fires.
	SessionLost()
}

type nopRecorder struct{}

func (nopRecorder) EpisodeStarted()                          {}
func (nopRecorder) FollowerQueued()                          {}
func (nopRecorder) EpisodeSettled(error, int, time.Duration) {}
func (nopRecorder) SessionLost()                             {}

// NopRecorder returns a [Recorder] that discards everything.
func NopRecorder() Recorder {
	return nopRecorder{}
}
