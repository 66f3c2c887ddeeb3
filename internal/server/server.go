// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer returns a Server serving handler on address. name labels the
// log lines (e.g. "devserver", "metrics").
func NewHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errEmptyAddress
	}
	if handler == nil {
		return nil, errNilHandler
	}

	logger.Info().Str("server", name).Str("address", address).Msg("creating new server...")
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (h *httpServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.Serve(ctx, listener)
}

func (h *httpServer) Serve(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("server", h.name).Str("address", listener.Addr().String()).Msg("launching HTTP server")
		serveErr <- h.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("server", h.name).Msg("HTTP server shutdown")
		return err
	}

	h.logger.Info().Str("server", h.name).Msg("server shut down gracefully")
	return nil
}
