// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/MKhiriev/frontwall-client/internal/store"
)

type sessionLostNavigator struct {
	transport adapter.Transport
	sessions  store.SessionStore
	out       io.Writer
	logger    *logger.Logger
}

// NewSessionLostNavigator returns the CLI's hard navigation to the login
// entry point: it drops the credentials held by transport, deletes the
// persisted session and tells the user to log in again.
func NewSessionLostNavigator(transport adapter.Transport, sessions store.SessionStore, out io.Writer, log *logger.Logger) session.Navigator {
	return &sessionLostNavigator{transport: transport, sessions: sessions, out: out, logger: log}
}

func (n *sessionLostNavigator) Navigate(target string) {
	n.transport.SetToken("")
	if err := n.transport.ReplaceCookies(nil); err != nil {
		n.logger.Err(err).Msg("error dropping session cookies")
	}
	if err := n.sessions.Clear(context.Background()); err != nil {
		n.logger.Err(err).Msg("error clearing local session")
	}

	fmt.Fprintf(n.out, "session ended (%s): run `login <username>` to sign in again\n", target)
}
