// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/service"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultRefreshInterval = 30 * time.Second

var writeClipboard = clipboard.WriteAll

// dashboardModel shows the account, the shield and the site list. Every
// reload fans out through the dashboard service, so an expired access token
// is renewed once for the whole batch.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	interval time.Duration

	overview  models.Overview
	loaded    bool
	updatedAt time.Time
	idx       int
	gen       int

	loading bool
	busy    bool
	spinner spinner.Model
	status  string
	overlay *errorOverlayModel

	// lost is set when the session ended; the program quits with it.
	lost error
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, interval time.Duration) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:      ctx,
		services: services,
		interval: interval,
		loading:  true,
		spinner:  s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if sessionLost(msg.err) {
				m.lost = msg.err
				return m, tea.Quit
			}
			m.showError(msg.err)
			next := m.scheduleReload()
			return m, next
		}
		m.overview = msg.overview
		m.loaded = true
		m.updatedAt = time.Now()
		m.clampIdx()
		next := m.scheduleReload()
		return m, next
	case reloadTickMsg:
		if msg.gen != m.gen || m.loading {
			return m, nil
		}
		return m.reload()
	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			if sessionLost(msg.err) {
				m.lost = msg.err
				return m, tea.Quit
			}
			m.showError(msg.err)
			return m, nil
		}
		m.status = msg.status
		next, cmd := m.reload()
		return next, tea.Batch(cmd, cmdClearStatus())
	case copiedMsg:
		m.status = "copied " + msg.what
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.loading || m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.overview.Sites)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		if !m.loading {
			return m.reload()
		}
	case key.Matches(msg, keys.deploy):
		site, ok := m.current()
		if !ok || m.busy {
			return m, nil
		}
		return m.runAction(fmt.Sprintf("shield deployed for %s", site.Name), func(ctx context.Context) error {
			_, err := m.services.ShieldService.Deploy(ctx, site.ID)
			return err
		})
	case key.Matches(msg, keys.undeploy):
		if m.busy || !m.overview.Shield.Active {
			return m, nil
		}
		return m.runAction("shield undeployed", m.services.ShieldService.Undeploy)
	case key.Matches(msg, keys.learn):
		if m.busy {
			return m, nil
		}
		enabled := !m.overview.Shield.LearnMode
		return m.runAction("learn mode "+onOff(enabled), func(ctx context.Context) error {
			return m.services.ShieldService.SetLearnMode(ctx, enabled)
		})
	case key.Matches(msg, keys.copy):
		if site, ok := m.current(); ok {
			return m, cmdCopyToClipboard(site.TargetURL, "target url")
		}
	case key.Matches(msg, keys.copyID):
		if site, ok := m.current(); ok {
			return m, cmdCopyToClipboard(site.ID, "site id")
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder
	switch {
	case !m.loaded && m.loading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case !m.loaded:
		b.WriteString("no data yet\n")
	default:
		m.writeOverview(&b)
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	title := "FrontWall"
	if m.loading || m.busy {
		title += "  " + m.spinner.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"↑/↓ select │ d deploy │ u undeploy │ l learn mode │ c copy url │ i copy id │ r reload │ q quit")
}

func (m dashboardModel) writeOverview(b *strings.Builder) {
	fmt.Fprintf(b, "Admin:   %s\n", valueOrDash(m.overview.User.Username))

	shield := m.overview.Shield
	if shield.Active {
		fmt.Fprintf(b, "Shield:  %s\n", activeStyle.Render(fmt.Sprintf("active on port %d, learn mode %s", shield.Port, onOff(shield.LearnMode))))
	} else {
		fmt.Fprintf(b, "Shield:  %s\n", inactiveStyle.Render("inactive"))
	}
	fmt.Fprintf(b, "Updated: %s\n\n", m.updatedAt.Format(time.TimeOnly))

	if len(m.overview.Sites) == 0 {
		b.WriteString("no sites\n")
		return
	}

	for i, site := range m.overview.Sites {
		line := fmt.Sprintf("%-20s %-40s", fitText(site.Name, 20), fitText(site.TargetURL, 40))
		if site.ShieldActive {
			line += " " + activeStyle.Render("[shield]")
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
}

func (m dashboardModel) current() (models.Site, bool) {
	if m.idx < 0 || m.idx >= len(m.overview.Sites) {
		return models.Site{}, false
	}
	return m.overview.Sites[m.idx], true
}

func (m *dashboardModel) clampIdx() {
	if m.idx >= len(m.overview.Sites) {
		m.idx = len(m.overview.Sites) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *dashboardModel) showError(err error) {
	m.overlay = &errorOverlayModel{message: humanizeServerUnavailableError(err)}
}

func (m dashboardModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) runAction(status string, action func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return actionDoneMsg{status: status, err: action(ctx)}
	})
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DashboardService
	return func() tea.Msg {
		overview, err := svc.Overview(ctx)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

// scheduleReload arms the next reload and invalidates the previous one.
func (m *dashboardModel) scheduleReload() tea.Cmd {
	m.gen++
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return reloadTickMsg{gen: gen}
	})
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
