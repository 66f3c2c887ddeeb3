// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldUsername = "username"
	// FieldPassword checks presence only.
	FieldPassword = "password"
	// FieldNewPassword also enforces [app.MinPasswordLength]; used on setup.
	FieldNewPassword = "new_password"

	FieldName      = "name"
	FieldTargetURL = "target_url"
	FieldCrawl     = "crawl"
	FieldSiteAuth  = "site_auth"
	// FieldAnyChange rejects an update that changes nothing.
	FieldAnyChange = "any_change"
)

// SiteValidator implements [Validator] for models.Credentials,
// models.SiteCreate and models.SiteUpdate, by value or pointer.
type SiteValidator struct{}

func NewSiteValidator() Validator {
	return &SiteValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked per type.
func (v *SiteValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SiteCreate:
		return v.validateSiteCreate(value, fields...)
	case *models.SiteCreate:
		return v.validateSiteCreate(*value, fields...)

	case models.SiteUpdate:
		return v.validateSiteUpdate(value, fields...)
	case *models.SiteUpdate:
		return v.validateSiteUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// Default fields: username, password.
func (v *SiteValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if len(c.Password) < app.MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Default fields: name, target_url, crawl, site_auth.
func (v *SiteValidator) validateSiteCreate(s models.SiteCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTargetURL, FieldCrawl, FieldSiteAuth}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(s.Name) == "" {
				return ErrEmptySiteName
			}
		case FieldTargetURL:
			if !validTargetURL(s.TargetURL) {
				return ErrInvalidTargetURL
			}
		case FieldCrawl:
			// zero means "server default"
			if s.CrawlConcurrency < 0 || s.CrawlDelay < 0 || s.CrawlMaxPages < 0 {
				return ErrInvalidCrawl
			}
		case FieldSiteAuth:
			if (s.AuthUser == nil) != (s.AuthPassword == nil) {
				return ErrIncompleteSiteAuth
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Default fields: any_change, name, target_url, crawl. Only the fields
// present in the update are checked.
func (v *SiteValidator) validateSiteUpdate(s models.SiteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyChange, FieldName, FieldTargetURL, FieldCrawl}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyChange:
			if s == (models.SiteUpdate{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if s.Name != nil && strings.TrimSpace(*s.Name) == "" {
				return ErrEmptySiteName
			}
		case FieldTargetURL:
			if s.TargetURL != nil && !validTargetURL(*s.TargetURL) {
				return ErrInvalidTargetURL
			}
		case FieldCrawl:
			if (s.CrawlConcurrency != nil && *s.CrawlConcurrency <= 0) ||
				(s.CrawlDelay != nil && *s.CrawlDelay < 0) ||
				(s.CrawlMaxPages != nil && *s.CrawlMaxPages <= 0) {
				return ErrInvalidCrawl
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validTargetURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
