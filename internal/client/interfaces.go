// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured command and blocks until it is done or ctx
	// is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive terminal front end. It is only available when
// stdin is a terminal.
type UI interface {
	// PromptPassword reads a password without echoing it.
	PromptPassword(ctx context.Context, label string) (string, error)
	// Dashboard runs the live overview until the user quits. It returns the
	// error that ended the session, if any.
	Dashboard(ctx context.Context) error
}
