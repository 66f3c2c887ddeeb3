// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract for the HTTP servers managed by this
// package. It satisfies workers.Worker, so a server can run next to pollers.
type Server interface {
	// Run listens on the configured address and blocks until ctx is done and
	// the server has shut down.
	Run(ctx context.Context) error

	// Serve is Run on an existing listener.
	Serve(ctx context.Context, listener net.Listener) error
}
