// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/frontwall-client/internal/mock"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	sites := mock.NewMockSiteService(ctrl)
	shield := mock.NewMockShieldService(ctrl)

	auth.EXPECT().Me(gomock.Any()).Return(models.User{Username: "admin"}, nil)
	sites.EXPECT().List(gomock.Any()).Return([]models.Site{{ID: "1"}}, nil)
	shield.EXPECT().Status(gomock.Any()).Return(models.ShieldStatus{Active: true}, nil)

	overview, err := NewDashboardService(auth, sites, shield).Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", overview.User.Username)
	assert.Len(t, overview.Sites, 1)
	assert.True(t, overview.Shield.Active)
}

func TestDashboardService_Overview_FirstErrorCancelsTheRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	sites := mock.NewMockSiteService(ctrl)
	shield := mock.NewMockShieldService(ctrl)

	auth.EXPECT().Me(gomock.Any()).Return(models.User{}, ErrSessionExpired)
	sites.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Site, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	shield.EXPECT().Status(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.ShieldStatus, error) {
		<-ctx.Done()
		return models.ShieldStatus{}, ctx.Err()
	})

	overview, err := NewDashboardService(auth, sites, shield).Overview(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, errors.Is(err, context.Canceled))
	assert.Equal(t, models.Overview{}, overview)
}
