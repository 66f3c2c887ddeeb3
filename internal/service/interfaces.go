// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the FrontWall call sites layered on the session
// client: authentication, sites, shield control and the dashboard overview.
// Every request goes through [APIClient], so an expired access token is
// renewed transparently and concurrent calls share one refresh.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/frontwall-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// APIClient is the session-aware API client. *session.Client satisfies it.
type APIClient interface {
	Do(ctx context.Context, req models.Request) (*models.Response, error)
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error

	// ResetRedirect re-arms the lost-session redirect after a login.
	ResetRedirect()
}

// AuthService manages the administrator session.
type AuthService interface {
	// SetupRequired reports whether no administrator exists yet.
	SetupRequired(ctx context.Context) (bool, error)

	// Setup creates the first administrator and logs in as it.
	Setup(ctx context.Context, credentials models.Credentials) error

	// Login authenticates, stores the access token on the transport and
	// persists the session locally.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout ends the session on the server (best effort) and forgets it
	// locally.
	Logout(ctx context.Context) error

	// Me returns the logged-in administrator.
	Me(ctx context.Context) (models.User, error)

	// Restore loads the persisted session into the transport. It returns
	// [ErrNotLoggedIn] when nothing has been stored.
	Restore(ctx context.Context) (models.Session, error)

	// Persist saves the current token and cookie jar, which may have been
	// rotated by a refresh since Restore.
	Persist(ctx context.Context) error
}

// SiteService manages protected sites.
type SiteService interface {
	List(ctx context.Context) ([]models.Site, error)
	Get(ctx context.Context, id string) (models.Site, error)
	Create(ctx context.Context, site models.SiteCreate) (models.Site, error)
	Update(ctx context.Context, id string, update models.SiteUpdate) (models.Site, error)
	Delete(ctx context.Context, id string) error
}

// ShieldService controls the reverse-proxy shield.
type ShieldService interface {
	Status(ctx context.Context) (models.ShieldStatus, error)
	Deploy(ctx context.Context, siteID string) (models.DeployResult, error)
	Undeploy(ctx context.Context) error
	SetLearnMode(ctx context.Context, enabled bool) error
}

// DashboardService assembles the dashboard view.
type DashboardService interface {
	// Overview fetches the user, the sites and the shield status
	// concurrently.
	Overview(ctx context.Context) (models.Overview, error)
}

// ShieldStatusJob defines the contract for a background worker that
// periodically polls the shield status.
type ShieldStatusJob interface {
	// Start launches the background goroutine. It polls every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context) error

	// Last returns the most recent poll result.
	Last() (models.ShieldStatus, error)
}

// AppInfoService reports the versions on both ends of the wire.
type AppInfoService interface {
	// GetClientInfo returns the build information of this binary.
	GetClientInfo(ctx context.Context) models.AppBuildInfo
	// GetServerInfo asks the API for its health and version.
	GetServerInfo(ctx context.Context) (models.Health, error)
}
