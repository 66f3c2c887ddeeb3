// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
)

// Outcome is the classification of a failed call.
type Outcome int

const (
	// Passthrough failures are returned to the caller untouched.
	Passthrough Outcome = iota
	// Recoverable failures start or join a refresh episode.
	Recoverable
	// Terminal failures are returned to the caller and fire the redirect.
	Terminal
)

func (o Outcome) String() string {
	switch o {
	case Recoverable:
		return "recoverable"
	case Terminal:
		return "terminal"
	default:
		return "passthrough"
	}
}

// Classifier decides whether a failed call may be recovered by refreshing
// the session.
type Classifier struct {
	protected map[string]struct{}
}

// NewClassifier returns a Classifier that never recovers calls to the given
// endpoints (the refresh and login paths).
func NewClassifier(protectedPaths ...string) Classifier {
	protected := make(map[string]struct{}, len(protectedPaths))
	for _, p := range protectedPaths {
		protected[normalizePath(p)] = struct{}{}
	}
	return Classifier{protected: protected}
}

// Classify maps err to an [Outcome]. Only a 401 [*adapter.Failure] is ever
// Recoverable or Terminal.
func (c Classifier) Classify(err error) Outcome {
	failure, ok := adapter.AsFailure(err)
	if !ok || failure.StatusCode != http.StatusUnauthorized {
		return Passthrough
	}

	if failure.Request.Retried() || c.isProtected(failure.Request.Endpoint()) {
		return Terminal
	}

	return Recoverable
}

// IsAuthFailure reports whether err is eligible for refresh and replay.
func (c Classifier) IsAuthFailure(err error) bool {
	return c.Classify(err) == Recoverable
}

func (c Classifier) isProtected(endpoint string) bool {
	_, ok := c.protected[normalizePath(endpoint)]
	return ok
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
