// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is a single masked input. Enter submits a non-empty value,
// esc and ctrl+c cancel.
type passwordModel struct {
	label     string
	input     textinput.Model
	errMsg    string
	cancelled bool
}

func newPasswordModel(label string) passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{label: label, input: input}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), keyMsg.Type == tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.input.Value() == "" {
				m.errMsg = "password is required"
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != "" {
		m.errMsg = ""
	}
	return m, cmd
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString(m.label)
	b.WriteString(": ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
