// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/devserver"
	handler "github.com/MKhiriev/frontwall-client/internal/handler/http"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/server"
	"github.com/MKhiriev/frontwall-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("frontwall-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.LogLevel)

	log.Debug().Str("address", cfg.Address).Dur("access_ttl", cfg.AccessTTL).Dur("refresh_ttl", cfg.RefreshTTL).Msg("received configs")

	backend, err := devserver.NewBackend(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend")
	}

	routes := handler.NewHandler(backend, *cfg, buildInfo, log).Init()

	srv, err := server.NewHTTPServer("devserver", cfg.Address, routes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
