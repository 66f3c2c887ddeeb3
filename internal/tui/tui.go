// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("cancelled by user")

// TUI runs the interactive screens of the client on the terminal.
type TUI struct {
	services *service.ClientServices
	interval time.Duration
	logger   *logger.Logger

	// options are appended to every program; tests swap the terminal.
	options []tea.ProgramOption
}

// New returns a TUI whose dashboard reloads every interval.
func New(services *service.ClientServices, interval time.Duration, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &TUI{services: services, interval: interval, logger: log}, nil
}

// PromptPassword asks for a password with masked echo.
func (t *TUI) PromptPassword(ctx context.Context, label string) (string, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(newPasswordModel(label), opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrUserQuit
	}
	return result.input.Value(), nil
}

// Dashboard shows the overview until the user quits or the session ends.
// A lost session is returned as the error.
func (t *TUI) Dashboard(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, t.options...)
	finalModel, err := tea.NewProgram(newDashboardModel(ctx, t.services, t.interval), opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.lost != nil {
		t.logger.Err(result.lost).Msg("dashboard closed: session lost")
	}
	return result.lost
}
