// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/frontwall-client/internal/validators"
	"github.com/MKhiriev/frontwall-client/models"
)

const (
	defaultCrawlConcurrency = 5
	defaultCrawlDelay       = 0.5
	defaultCrawlMaxPages    = 500
)

type site struct {
	models.Site
	authPassword *string
}

// ListSites returns every site, newest first.
func (b *Backend) ListSites() []models.Site {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Site, 0, len(b.siteOrder))
	for _, id := range slices.Backward(b.siteOrder) {
		out = append(out, b.view(id))
	}
	return out
}

func (b *Backend) GetSite(id string) (models.Site, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.sites[id]; !ok {
		return models.Site{}, ErrSiteNotFound
	}
	return b.view(id), nil
}

func (b *Backend) CreateSite(in models.SiteCreate) (models.Site, error) {
	if err := b.validator.Validate(context.Background(), in, validators.FieldName, validators.FieldTargetURL, validators.FieldCrawl); err != nil {
		return models.Site{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	s := &site{
		Site: models.Site{
			ID:               b.ids.Generate(),
			Name:             in.Name,
			TargetURL:        in.TargetURL,
			IsActive:         true,
			CrawlConcurrency: defaultCrawlConcurrency,
			CrawlDelay:       defaultCrawlDelay,
			CrawlMaxPages:    defaultCrawlMaxPages,
			RespectRobotsTXT: true,
			AuthUser:         in.AuthUser,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		authPassword: in.AuthPassword,
	}
	if in.CrawlConcurrency > 0 {
		s.CrawlConcurrency = in.CrawlConcurrency
	}
	if in.CrawlDelay > 0 {
		s.CrawlDelay = in.CrawlDelay
	}
	if in.CrawlMaxPages > 0 {
		s.CrawlMaxPages = in.CrawlMaxPages
	}
	if in.RespectRobotsTXT != nil {
		s.RespectRobotsTXT = *in.RespectRobotsTXT
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sites[s.ID] = s
	b.siteOrder = append(b.siteOrder, s.ID)
	return b.view(s.ID), nil
}

func (b *Backend) UpdateSite(id string, in models.SiteUpdate) (models.Site, error) {
	// an empty update returns the site unchanged
	if err := b.validator.Validate(context.Background(), in, validators.FieldName, validators.FieldTargetURL, validators.FieldCrawl); err != nil {
		return models.Site{}, ErrInvalidDataProvided
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sites[id]
	if !ok {
		return models.Site{}, ErrSiteNotFound
	}

	setIf(&s.Name, in.Name)
	setIf(&s.TargetURL, in.TargetURL)
	setIf(&s.IsActive, in.IsActive)
	setIf(&s.CrawlConcurrency, in.CrawlConcurrency)
	setIf(&s.CrawlDelay, in.CrawlDelay)
	setIf(&s.CrawlMaxPages, in.CrawlMaxPages)
	setIf(&s.RespectRobotsTXT, in.RespectRobotsTXT)
	if in.AuthUser != nil {
		s.AuthUser = in.AuthUser
	}
	if in.AuthPassword != nil {
		s.authPassword = in.AuthPassword
	}
	s.UpdatedAt = time.Now().UTC()

	return b.view(id), nil
}

// DeleteSite removes a site. Deleting the site the shield serves stops the
// shield.
func (b *Backend) DeleteSite(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.sites[id]; !ok {
		return ErrSiteNotFound
	}
	delete(b.sites, id)
	b.siteOrder = slices.DeleteFunc(b.siteOrder, func(s string) bool { return s == id })

	if b.shieldSite == id {
		b.shieldSite = ""
		b.learnMode = false
	}
	return nil
}

// view must be called with b.mu held.
func (b *Backend) view(id string) models.Site {
	s := b.sites[id].Site
	s.ShieldActive = b.shieldSite == id
	return s
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
