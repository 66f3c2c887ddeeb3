// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/logger"
)

// SessionLostHandler is notified when a refresh episode fails.
type SessionLostHandler interface {
	OnSessionLost()
}

// Arbitrator guarantees that at most one refresh exchange is in flight. The
// first caller of [Arbitrator.Renew] in an idle state becomes the leader and
// runs the exchange; callers arriving while it runs are queued and receive
// the leader's outcome.
type Arbitrator struct {
	mu         sync.Mutex
	refreshing bool
	queue      pendingQueue

	refresher Refresher
	lost      SessionLostHandler
	timeout   time.Duration
	recorder  Recorder
	logger    *logger.Logger
}

// NewArbitrator creates an idle Arbitrator. timeout bounds each refresh
// exchange; zero means no bound. lost is invoked once per failed episode.
func NewArbitrator(refresher Refresher, lost SessionLostHandler, timeout time.Duration, recorder Recorder, log *logger.Logger) *Arbitrator {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &Arbitrator{
		refresher: refresher,
		lost:      lost,
		timeout:   timeout,
		recorder:  recorder,
		logger:    log,
	}
}

// Renew blocks until the session has been renewed by the current (or a new)
// episode. It returns nil when the caller may replay its request, or the
// episode's error, wrapped in [ErrRefreshFailed], when it may not.
//
// A follower stops waiting when ctx is done. The leader's refresh exchange
// ignores cancellation of ctx, since followers depend on its outcome.
func (a *Arbitrator) Renew(ctx context.Context) error {
	w, leader := a.tryBecomeLeader()
	if !leader {
		a.recorder.FollowerQueued()
		select {
		case err := <-w.done:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return a.lead(ctx)
}

// Refreshing reports whether an episode is in progress.
func (a *Arbitrator) Refreshing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refreshing
}

// Pending returns the number of queued followers.
func (a *Arbitrator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.len()
}

// tryBecomeLeader makes the caller the leader of a new episode, or queues it
// behind the running one. The check and the enqueue share one critical
// section.
func (a *Arbitrator) tryBecomeLeader() (*waiter, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.refreshing {
		return a.queue.enqueue(), false
	}

	a.refreshing = true
	return nil, true
}

// settle ends the episode: the queue is detached and the state returns to
// idle atomically, then the detached followers are released in FIFO order.
func (a *Arbitrator) settle(outcome error) int {
	a.mu.Lock()
	waiters := a.queue.detach()
	a.refreshing = false
	a.mu.Unlock()

	release(waiters, outcome)
	return len(waiters)
}

func (a *Arbitrator) lead(ctx context.Context) error {
	start := time.Now()
	a.recorder.EpisodeStarted()
	a.logger.Debug().Msg("session refresh started")

	settled := false
	defer func() {
		if !settled {
			followers := a.settle(ErrRefreshAborted)
			a.recorder.EpisodeSettled(ErrRefreshAborted, followers, time.Since(start))
			a.logger.Error().Int("followers", followers).Msg("session refresh aborted")
		}
	}()

	err := a.refresh(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	followers := a.settle(err)
	settled = true
	a.recorder.EpisodeSettled(err, followers, time.Since(start))

	if err != nil {
		a.logger.Warn().
			Err(err).
			Int("status", adapter.StatusCode(err)).
			Int("followers", followers).
			Msg("session refresh failed")
		if a.lost != nil {
			a.lost.OnSessionLost()
		}
		return err
	}

	a.logger.Debug().
		Int("followers", followers).
		Dur("duration", time.Since(start)).
		Msg("session refreshed")
	return nil
}

func (a *Arbitrator) refresh(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return a.refresher.Refresh(ctx)
}
