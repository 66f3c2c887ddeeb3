// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/server"
	"github.com/MKhiriev/frontwall-client/internal/workers"
	"github.com/MKhiriev/frontwall-client/models"
)

func (a *App) version(ctx context.Context, _ []string) error {
	info := a.services.AppInfoService
	fmt.Fprintln(a.out, info.GetClientInfo(ctx))

	health, err := info.GetServerInfo(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Server: unavailable (%v)\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Server version: %s\nServer commit: %s\n", health.Version, health.Commit)
	return nil
}

func (a *App) setup(ctx context.Context, args []string) error {
	required, err := a.services.AuthService.SetupRequired(ctx)
	if err != nil {
		return err
	}
	if !required {
		fmt.Fprintln(a.out, "setup already completed, use login")
		return nil
	}

	password, err := a.readPassword(ctx)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Setup(ctx, models.Credentials{Username: args[0], Password: password}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "administrator %s created and logged in\n", args[0])
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	password, err := a.readPassword(ctx)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Login(ctx, models.Credentials{Username: args[0], Password: password}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s\n", args[0])
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.services.AuthService.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", user.Username, user.CreatedAt.Format(time.DateOnly))
	return nil
}

func (a *App) sites(ctx context.Context, _ []string) error {
	sites, err := a.services.SiteService.List(ctx)
	if err != nil {
		return err
	}
	writeSites(a.out, sites)
	return nil
}

func (a *App) site(ctx context.Context, args []string) error {
	site, err := a.services.SiteService.Get(ctx, args[0])
	if err != nil {
		return err
	}
	writeSite(a.out, site)
	return nil
}

func (a *App) siteCreate(ctx context.Context, args []string) error {
	site, err := a.services.SiteService.Create(ctx, models.SiteCreate{Name: args[0], TargetURL: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "site %s created\n", site.ID)
	return nil
}

func (a *App) siteDelete(ctx context.Context, args []string) error {
	if err := a.services.SiteService.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "site %s deleted\n", args[0])
	return nil
}

func (a *App) shieldStatus(ctx context.Context, _ []string) error {
	status, err := a.services.ShieldService.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "shield: %s\n", formatShield(status))
	return nil
}

func (a *App) deploy(ctx context.Context, args []string) error {
	result, err := a.services.ShieldService.Deploy(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "shield %s for site %s on port %d\n", result.Status, args[0], result.Port)
	return nil
}

func (a *App) undeploy(ctx context.Context, _ []string) error {
	if err := a.services.ShieldService.Undeploy(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "shield undeployed")
	return nil
}

func (a *App) learnMode(ctx context.Context, args []string) error {
	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		enabled = true
	case "off", "false", "0":
	default:
		return fmt.Errorf("%w: usage: learn-mode on|off", ErrMissingArgument)
	}

	if err := a.services.ShieldService.SetLearnMode(ctx, enabled); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "learn mode %s\n", strings.ToLower(args[0]))
	return nil
}

func (a *App) overview(ctx context.Context, _ []string) error {
	overview, err := a.services.DashboardService.Overview(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", overview.User.Username)
	fmt.Fprintf(a.out, "shield: %s\n", formatShield(overview.Shield))
	writeSites(a.out, overview.Sites)
	return nil
}

// watch polls the shield status and the site list until ctx is done. The
// session is persisted after every site poll, so a rotated refresh cookie
// survives an interrupted process.
func (a *App) watch(ctx context.Context, _ []string) error {
	ws := workers.NewWorkers(
		a.services.ShieldStatusJob,
		workers.NewPoller("sites", a.cfg.Workers.PollInterval, a.pollSites, a.logger),
	)

	if a.cfg.App.MetricsAddress != "" && a.metrics != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", a.metrics)

		metricsServer, err := server.NewHTTPServer("metrics", a.cfg.App.MetricsAddress, mux, a.logger)
		if err != nil {
			return err
		}
		ws.Add(metricsServer)
		fmt.Fprintf(a.out, "metrics on http://%s/metrics\n", a.cfg.App.MetricsAddress)
	}

	fmt.Fprintln(a.out, "watching, press Ctrl+C to stop")
	return ws.Run(ctx)
}

func (a *App) pollSites(ctx context.Context) error {
	sites, err := a.services.SiteService.List(ctx)
	if err != nil {
		return err
	}

	active := 0
	for _, s := range sites {
		if s.ShieldActive {
			active++
		}
	}
	fmt.Fprintf(a.out, "%s sites: %d total, %d shielded\n", time.Now().Format(time.TimeOnly), len(sites), active)

	a.persist(ctx)
	return nil
}

func (a *App) dashboard(ctx context.Context, _ []string) error {
	if a.ui == nil {
		return ErrNoTerminal
	}
	return a.ui.Dashboard(ctx)
}
