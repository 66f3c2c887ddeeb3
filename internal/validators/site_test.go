// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewSiteValidator(t *testing.T) {
	v := NewSiteValidator()
	require.NotNil(t, v)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewSiteValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		obj    any
		fields []string
		want   error
	}{
		{"valid login", models.Credentials{Username: "admin", Password: "x"}, nil, nil},
		{"pointer", &models.Credentials{Username: "admin", Password: "x"}, nil, nil},
		{"blank username", models.Credentials{Username: "  ", Password: "x"}, nil, ErrEmptyUsername},
		{"empty password", models.Credentials{Username: "admin"}, nil, ErrEmptyPassword},
		{"short new password", models.Credentials{Username: "admin", Password: "short"}, []string{FieldUsername, FieldNewPassword}, ErrPasswordTooShort},
		{"new password ok", models.Credentials{Username: "admin", Password: "password1"}, []string{FieldNewPassword}, nil},
		{"unknown field", models.Credentials{}, []string{"email"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_SiteCreate(t *testing.T) {
	v := NewSiteValidator()
	ctx := context.Background()
	valid := models.SiteCreate{Name: "shop", TargetURL: "https://shop.example"}

	tests := []struct {
		name   string
		mutate func(*models.SiteCreate)
		fields []string
		want   error
	}{
		{"valid", func(*models.SiteCreate) {}, nil, nil},
		{"blank name", func(s *models.SiteCreate) { s.Name = " " }, nil, ErrEmptySiteName},
		{"relative url", func(s *models.SiteCreate) { s.TargetURL = "/shop" }, nil, ErrInvalidTargetURL},
		{"ftp url", func(s *models.SiteCreate) { s.TargetURL = "ftp://shop.example" }, nil, ErrInvalidTargetURL},
		{"negative delay", func(s *models.SiteCreate) { s.CrawlDelay = -1 }, nil, ErrInvalidCrawl},
		{"auth user only", func(s *models.SiteCreate) { s.AuthUser = ptr("bob") }, nil, ErrIncompleteSiteAuth},
		{"auth pair", func(s *models.SiteCreate) { s.AuthUser, s.AuthPassword = ptr("bob"), ptr("pw") }, nil, nil},
		{"scoped to name", func(s *models.SiteCreate) { s.TargetURL = "" }, []string{FieldName}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := valid
			tt.mutate(&site)
			err := v.Validate(ctx, &site, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_SiteUpdate(t *testing.T) {
	v := NewSiteValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.SiteUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.SiteUpdate{}, FieldName, FieldTargetURL))
	assert.NoError(t, v.Validate(ctx, models.SiteUpdate{IsActive: ptr(false)}))
	assert.ErrorIs(t, v.Validate(ctx, models.SiteUpdate{Name: ptr("")}), ErrEmptySiteName)
	assert.ErrorIs(t, v.Validate(ctx, models.SiteUpdate{TargetURL: ptr("nope")}), ErrInvalidTargetURL)
	assert.ErrorIs(t, v.Validate(ctx, &models.SiteUpdate{CrawlMaxPages: ptr(0)}), ErrInvalidCrawl)
	assert.ErrorIs(t, v.Validate(ctx, models.SiteUpdate{}, FieldSiteAuth), ErrUnknownField)
}
