// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/frontwall-client/internal/validators"
	"github.com/MKhiriev/frontwall-client/models"
)

const sitesPath = "/sites/"

type siteService struct {
	api       APIClient
	validator validators.Validator
}

// NewSiteService returns the [SiteService]. Input is validated before it is
// sent.
func NewSiteService(api APIClient) SiteService {
	return &siteService{api: api, validator: validators.NewSiteValidator()}
}

func (s *siteService) List(ctx context.Context) ([]models.Site, error) {
	sites := make([]models.Site, 0)
	if err := s.api.Get(ctx, sitesPath, &sites); err != nil {
		return nil, mapAdapterError(err)
	}
	return sites, nil
}

func (s *siteService) Get(ctx context.Context, id string) (models.Site, error) {
	path, err := sitePath(id)
	if err != nil {
		return models.Site{}, err
	}

	var site models.Site
	if err = s.api.Get(ctx, path, &site); err != nil {
		return models.Site{}, mapAdapterError(err)
	}
	return site, nil
}

func (s *siteService) Create(ctx context.Context, site models.SiteCreate) (models.Site, error) {
	if err := s.validator.Validate(ctx, site); err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var created models.Site
	if err := s.api.Post(ctx, sitesPath, site, &created); err != nil {
		return models.Site{}, mapAdapterError(err)
	}
	return created, nil
}

func (s *siteService) Update(ctx context.Context, id string, update models.SiteUpdate) (models.Site, error) {
	path, err := sitePath(id)
	if err != nil {
		return models.Site{}, err
	}
	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var updated models.Site
	if err = s.api.Put(ctx, path, update, &updated); err != nil {
		return models.Site{}, mapAdapterError(err)
	}
	return updated, nil
}

func (s *siteService) Delete(ctx context.Context, id string) error {
	path, err := sitePath(id)
	if err != nil {
		return err
	}

	return mapAdapterError(s.api.Delete(ctx, path))
}

func sitePath(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidDataProvided
	}
	return sitesPath + url.PathEscape(id), nil
}
