// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/frontwall-client/models"
)

const healthPath = "/health"

type appInfoService struct {
	api       APIClient
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(api APIClient, buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{
		api:       api,
		buildInfo: buildInfo,
	}
}

func (s *appInfoService) GetClientInfo(context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) GetServerInfo(ctx context.Context) (models.Health, error) {
	var health models.Health
	if err := s.api.Get(ctx, healthPath, &health); err != nil {
		return models.Health{}, mapAdapterError(err)
	}
	return health, nil
}
