// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/frontwall-client/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnavailable) {
		return "FrontWall API is unreachable, retrying on the next reload"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network or the server is unavailable"
	}

	return err.Error()
}

// sessionLost reports whether err ends the dashboard. The session client has
// already cleared the stored session by then.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrSessionExpired)
}
