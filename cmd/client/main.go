// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/client"
	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/metrics"
	"github.com/MKhiriev/frontwall-client/internal/service"
	"github.com/MKhiriev/frontwall-client/internal/session"
	"github.com/MKhiriev/frontwall-client/internal/store"
	"github.com/MKhiriev/frontwall-client/internal/tui"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/mattn/go-isatty"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("frontwall-client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}()

	recorder := metrics.NewRecorder()
	out := client.NewOutput(os.Stdout)

	navigator := client.NewSessionLostNavigator(transport, storages.Sessions, os.Stderr, log)
	api := session.NewClient(transport, cfg.Session, navigator, recorder, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewClientServices(api, transport, storages, *cfg, buildInfo, client.ShieldStatusPrinter(out), log)

	var ui client.UI
	if isatty.IsTerminal(os.Stdin.Fd()) {
		if ui, err = tui.New(services, cfg.Workers.PollInterval, log); err != nil {
			return fmt.Errorf("error creating ui: %w", err)
		}
	}

	app, err := client.NewApp(services, ui, recorder.Handler(), *cfg, os.Stdin, out, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Err(err).Strs("args", cfg.Args).Msg("command failed")
		return err
	}
	return nil
}
