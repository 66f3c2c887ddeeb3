// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/service"
)

type command struct {
	usage string
	args  int
	// session commands restore the stored session first and persist it
	// afterwards.
	session bool
	run     func(ctx context.Context, args []string) error
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	metrics  http.Handler
	cfg      config.ClientConfig

	in     *bufio.Reader
	out    io.Writer
	logger *logger.Logger

	commands map[string]command
}

// NewApp wires the command table. ui may be nil when stdin is not a
// terminal; passwords are then read as plain lines. metrics may be nil; it is
// served by the watch command when cfg.App.MetricsAddress is set.
func NewApp(services *service.ClientServices, ui UI, metrics http.Handler, cfg config.ClientConfig, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}

	a := &App{
		services: services,
		ui:       ui,
		metrics:  metrics,
		cfg:      cfg,
		in:       bufio.NewReader(in),
		out:      NewOutput(out),
		logger:   log,
	}

	a.commands = map[string]command{
		"version":       {usage: "version", run: a.version},
		"setup":         {usage: "setup <username>", args: 1, run: a.setup},
		"login":         {usage: "login <username>", args: 1, run: a.login},
		"logout":        {usage: "logout", session: true, run: a.logout},
		"me":            {usage: "me", session: true, run: a.me},
		"sites":         {usage: "sites", session: true, run: a.sites},
		"site":          {usage: "site <id>", args: 1, session: true, run: a.site},
		"site-create":   {usage: "site-create <name> <target-url>", args: 2, session: true, run: a.siteCreate},
		"site-delete":   {usage: "site-delete <id>", args: 1, session: true, run: a.siteDelete},
		"shield-status": {usage: "shield-status", session: true, run: a.shieldStatus},
		"deploy":        {usage: "deploy <site-id>", args: 1, session: true, run: a.deploy},
		"undeploy":      {usage: "undeploy", session: true, run: a.undeploy},
		"learn-mode":    {usage: "learn-mode on|off", args: 1, session: true, run: a.learnMode},
		"overview":      {usage: "overview", session: true, run: a.overview},
		"watch":         {usage: "watch", session: true, run: a.watch},
		"dashboard":     {usage: "dashboard", session: true, run: a.dashboard},
	}

	return a, nil
}

// Run implements [Client]. It executes the command named by cfg.Args.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Args) == 0 {
		a.usage()
		return ErrUnknownCommand
	}

	name, args := a.cfg.Args[0], a.cfg.Args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) < cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrMissingArgument, cmd.usage)
	}

	if cmd.session {
		if _, err := a.services.AuthService.Restore(ctx); err != nil {
			return err
		}
		defer a.persist(ctx)
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")
	return cmd.run(ctx, args)
}

// persist saves the possibly rotated session. A session that was ended
// during the command has nothing left to save.
func (a *App) persist(ctx context.Context) {
	err := a.services.AuthService.Persist(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, service.ErrNotLoggedIn) {
		a.logger.Err(err).Msg("error persisting session")
	}
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: frontwall-client [flags] <command>")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

// readPassword asks the UI for a masked password. Without a terminal it reads
// one line from the input, so the password can be piped in.
func (a *App) readPassword(ctx context.Context) (string, error) {
	if a.ui != nil {
		return a.ui.PromptPassword(ctx, "Password")
	}

	fmt.Fprint(a.out, "Password: ")
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
