// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/frontwall-client/internal/adapter"
	"github.com/MKhiriev/frontwall-client/internal/app"
	"github.com/MKhiriev/frontwall-client/internal/mock"
	"github.com/MKhiriev/frontwall-client/internal/validators"
	"github.com/MKhiriev/frontwall-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSiteService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/sites/", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			respondWith([]models.Site{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})(out)
			return nil
		})

	sites, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "b", sites[1].Name)
}

func TestSiteService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)

	api.EXPECT().Get(gomock.Any(), "/sites/", gomock.Any()).Return(nil)

	sites, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

func TestSiteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/sites/a%2Fb", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			respondWith(models.Site{ID: "a/b"})(out)
			return nil
		})

	site, err := svc.Get(ctx, " a/b ")
	require.NoError(t, err)
	assert.Equal(t, "a/b", site.ID)

	_, err = svc.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSiteService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)

	api.EXPECT().Get(gomock.Any(), "/sites/42", gomock.Any()).
		Return(failure(http.StatusNotFound, adapter.ErrNotFound, detail(app.MsgSiteNotFound)))

	_, err := svc.Get(context.Background(), "42")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestSiteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)
	ctx := context.Background()

	in := models.SiteCreate{Name: "shop", TargetURL: "https://shop.example"}
	api.EXPECT().Post(ctx, "/sites/", in, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, out any) error {
			respondWith(models.Site{ID: "7", Name: "shop", TargetURL: "https://shop.example"})(out)
			return nil
		})

	site, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "7", site.ID)

	_, err = svc.Create(ctx, models.SiteCreate{Name: "no-target"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidTargetURL)

	_, err = svc.Create(ctx, models.SiteCreate{Name: "ftp", TargetURL: "ftp://files.example"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSiteService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)
	ctx := context.Background()

	name := "renamed"
	update := models.SiteUpdate{Name: &name}
	api.EXPECT().Put(ctx, "/sites/7", update, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, out any) error {
			respondWith(models.Site{ID: "7", Name: name})(out)
			return nil
		})

	site, err := svc.Update(ctx, "7", update)
	require.NoError(t, err)
	assert.Equal(t, name, site.Name)

	_, err = svc.Update(ctx, "7", models.SiteUpdate{})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestSiteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewSiteService(api)
	ctx := context.Background()

	api.EXPECT().Delete(ctx, "/sites/7").Return(nil)
	api.EXPECT().Delete(ctx, "/sites/8").
		Return(failure(http.StatusNotFound, adapter.ErrNotFound, detail(app.MsgSiteNotFound)))

	require.NoError(t, svc.Delete(ctx, "7"))
	assert.ErrorIs(t, svc.Delete(ctx, "8"), ErrSiteNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidDataProvided)
}
