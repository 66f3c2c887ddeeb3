// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync/atomic"

	"github.com/MKhiriev/frontwall-client/internal/logger"
)

// RedirectPolicy surfaces a lost session as a navigation to the login entry
// point. The first call wins; later calls are no-ops until [RedirectPolicy.Reset].
type RedirectPolicy struct {
	target    string
	navigator Navigator
	fired     atomic.Bool
	recorder  Recorder
	logger    *logger.Logger
}

// NewRedirectPolicy returns a policy that navigates to target.
func NewRedirectPolicy(target string, navigator Navigator, recorder Recorder, log *logger.Logger) *RedirectPolicy {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &RedirectPolicy{
		target:    target,
		navigator: navigator,
		recorder:  recorder,
		logger:    log,
	}
}

// OnSessionLost navigates to the login entry point unless it has already
// done so. It never returns an error; the callers propagate their own.
func (p *RedirectPolicy) OnSessionLost() {
	if !p.fired.CompareAndSwap(false, true) {
		return
	}

	p.recorder.SessionLost()
	p.logger.Info().Str("target", p.target).Msg("session lost, redirecting")
	if p.navigator != nil {
		p.navigator.Navigate(p.target)
	}
}

// Fired reports whether the redirect has happened since the last Reset.
func (p *RedirectPolicy) Fired() bool {
	return p.fired.Load()
}

// Reset re-arms the policy after a new session has been established.
func (p *RedirectPolicy) Reset() {
	p.fired.Store(false)
}
