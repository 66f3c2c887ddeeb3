// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/frontwall-client/models"
)

type dashboardService struct {
	auth   AuthService
	sites  SiteService
	shield ShieldService
}

// NewDashboardService returns the [DashboardService].
func NewDashboardService(auth AuthService, sites SiteService, shield ShieldService) DashboardService {
	return &dashboardService{auth: auth, sites: sites, shield: shield}
}

// Overview issues the three calls at once. With an expired token all three
// fail with 401 together and share a single refresh.
func (d *dashboardService) Overview(ctx context.Context) (models.Overview, error) {
	var overview models.Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := d.auth.Me(gctx)
		overview.User = user
		return err
	})
	g.Go(func() error {
		sites, err := d.sites.List(gctx)
		overview.Sites = sites
		return err
	})
	g.Go(func() error {
		status, err := d.shield.Status(gctx)
		overview.Shield = status
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Overview{}, err
	}
	return overview, nil
}
