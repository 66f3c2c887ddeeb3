// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/logger"
)

const defaultPollInterval = 30 * time.Second

// Poller calls a function immediately and then on every tick. A failing call
// is logged and does not stop the poller.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger
}

// NewPoller returns a [Worker] that runs fn every interval (30 seconds when
// interval is not positive).
func NewPoller(name string, interval time.Duration, fn func(ctx context.Context) error, log *logger.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{name: name, interval: interval, fn: fn, logger: log}
}

func (p *Poller) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("worker", p.name).Msg("poller stopped")
			return nil
		case <-t.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.fn(ctx); err != nil && ctx.Err() == nil {
		p.logger.Err(err).Str("worker", p.name).Msg("poll failed")
	}
}
