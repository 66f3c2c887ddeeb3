// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	reload   key.Binding
	deploy   key.Binding
	undeploy key.Binding
	learn    key.Binding
	copy     key.Binding
	copyID   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	deploy:   key.NewBinding(key.WithKeys("d")),
	undeploy: key.NewBinding(key.WithKeys("u")),
	learn:    key.NewBinding(key.WithKeys("l")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyID:   key.NewBinding(key.WithKeys("i")),
}
