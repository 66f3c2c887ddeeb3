// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/internal/store"
	"github.com/MKhiriev/frontwall-client/models"
)

// ClientServices groups every service used by the admin client.
type ClientServices struct {
	AuthService      AuthService
	SiteService      SiteService
	ShieldService    ShieldService
	DashboardService DashboardService
	ShieldStatusJob  ShieldStatusJob
	AppInfoService   AppInfoService
}

// NewClientServices wires the services around api. transport must be the
// transport api sends through.
func NewClientServices(api APIClient, transport adapter.Transport, storages *store.ClientStorages, cfg config.ClientConfig, buildInfo models.AppBuildInfo, report ShieldStatusReport, logger *logger.Logger) *ClientServices {
	auth := NewAuthService(api, transport, storages.Sessions, cfg.Session.LoginPath, logger)
	sites := NewSiteService(api)
	shield := NewShieldService(api)

	return &ClientServices{
		AuthService:      auth,
		SiteService:      sites,
		ShieldService:    shield,
		DashboardService: NewDashboardService(auth, sites, shield),
		ShieldStatusJob:  NewShieldStatusJob(shield, cfg.Workers.PollInterval, report),
		AppInfoService:   NewAppInfoService(api, buildInfo),
	}
}
