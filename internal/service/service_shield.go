// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/frontwall-client/models"
)

const (
	shieldStatusPath    = "/shield/status"
	shieldDeployPath    = "/shield/deploy/"
	shieldUndeployPath  = "/shield/undeploy"
	shieldLearnModePath = "/shield/learn-mode"
)

type shieldService struct {
	api APIClient
}

// NewShieldService returns the [ShieldService].
func NewShieldService(api APIClient) ShieldService {
	return &shieldService{api: api}
}

func (s *shieldService) Status(ctx context.Context) (models.ShieldStatus, error) {
	var status models.ShieldStatus
	if err := s.api.Get(ctx, shieldStatusPath, &status); err != nil {
		return models.ShieldStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (s *shieldService) Deploy(ctx context.Context, siteID string) (models.DeployResult, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return models.DeployResult{}, ErrInvalidDataProvided
	}

	var result models.DeployResult
	if err := s.api.Post(ctx, shieldDeployPath+url.PathEscape(siteID), nil, &result); err != nil {
		return models.DeployResult{}, mapAdapterError(err)
	}
	return result, nil
}

func (s *shieldService) Undeploy(ctx context.Context) error {
	return mapAdapterError(s.api.Post(ctx, shieldUndeployPath, nil, nil))
}

func (s *shieldService) SetLearnMode(ctx context.Context, enabled bool) error {
	req := models.NewRequest(http.MethodPost, shieldLearnModePath, nil)
	req.Query = map[string]string{"enabled": strconv.FormatBool(enabled)}

	_, err := s.api.Do(ctx, req)
	return mapAdapterError(err)
}
