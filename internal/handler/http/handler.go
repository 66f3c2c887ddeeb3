// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/frontwall-client/internal/config"
	"github.com/MKhiriev/frontwall-client/internal/devserver"
	"github.com/MKhiriev/frontwall-client/internal/logger"
	"github.com/MKhiriev/frontwall-client/models"
)

// Backend is the state the handlers serve. *devserver.Backend satisfies it.
type Backend interface {
	SetupRequired() bool
	Setup(credentials models.Credentials) (devserver.Tokens, error)
	Login(credentials models.Credentials) (devserver.Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (devserver.Tokens, error)
	Logout(refreshToken string)
	Authenticate(accessToken string) (string, error)
	Me(username string) (models.User, error)

	ListSites() []models.Site
	GetSite(id string) (models.Site, error)
	CreateSite(in models.SiteCreate) (models.Site, error)
	UpdateSite(id string, in models.SiteUpdate) (models.Site, error)
	DeleteSite(id string) error

	ShieldStatus() models.ShieldStatus
	Deploy(siteID string) (models.DeployResult, error)
	Undeploy() error
	SetLearnMode(enabled bool) error
}

type Handler struct {
	backend   Backend
	cfg       config.DevServerConfig
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(backend Backend, cfg config.DevServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend:   backend,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
