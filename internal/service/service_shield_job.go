// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/frontwall-client/models"
)

const defaultShieldPollInterval = 30 * time.Second

// ShieldStatusReport receives every poll result of a [ShieldStatusJob].
type ShieldStatusReport func(status models.ShieldStatus, err error)

type shieldStatusJob struct {
	shield   ShieldService
	interval time.Duration
	report   ShieldStatusReport

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	last    models.ShieldStatus
	lastErr error
}

// NewShieldStatusJob creates a job that calls shield.Status on a ticker and
// hands every result to report (which may be nil). interval is used by Run.
// The job is idle until Start or Run is called.
func NewShieldStatusJob(shield ShieldService, interval time.Duration, report ShieldStatusReport) ShieldStatusJob {
	return &shieldStatusJob{shield: shield, interval: interval, report: report}
}

// Start implements ShieldStatusJob. It stops any previously running job, then
// launches a background goroutine that polls immediately and then every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *shieldStatusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultShieldPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.poll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements ShieldStatusJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *shieldStatusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements ShieldStatusJob and workers.Worker.
func (j *shieldStatusJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
	return nil
}

func (j *shieldStatusJob) Last() (models.ShieldStatus, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last, j.lastErr
}

func (j *shieldStatusJob) poll(ctx context.Context) {
	status, err := j.shield.Status(ctx)
	if ctx.Err() != nil {
		return
	}

	j.mu.Lock()
	j.last, j.lastErr = status, err
	j.mu.Unlock()

	if j.report != nil {
		j.report(status, err)
	}
}
