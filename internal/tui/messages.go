// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/frontwall-client/models"
)

type overviewLoadedMsg struct {
	overview models.Overview
	err      error
}

type actionDoneMsg struct {
	status string
	err    error
}

// reloadTickMsg triggers a scheduled reload. Ticks from an older schedule
// carry a stale gen and are dropped.
type reloadTickMsg struct {
	gen int
}

type copiedMsg struct {
	what string
}

type clearStatusMsg struct{}
