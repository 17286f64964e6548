// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/mock"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDashboard struct {
	prefs     models.NavigationPreferences
	final     models.NavigationPreferences
	err       error
	refreshes atomic.Int32
	// block keeps Run open until the first refresh.
	block bool
	done  chan struct{}
}

func (d *fakeDashboard) Run() (models.NavigationPreferences, error) {
	if d.block {
		<-d.done
	}
	return d.final, d.err
}

func (d *fakeDashboard) Refresh() {
	if d.refreshes.Add(1) == 1 && d.block {
		close(d.done)
	}
}

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockClientPreferencesService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockClientPreferencesService(ctrl)

	return &service.ClientServices{
		RecordService:      mock.NewMockClientRecordService(ctrl),
		PreferencesService: prefs,
	}, prefs
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, config.ClientWorkers{}, models.AppBuildInfo{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, config.ClientWorkers{}, models.AppBuildInfo{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestApp_Run_RestoresAndSavesPreferences(t *testing.T) {
	services, prefsSvc := newTestServices(t)

	section := models.SectionUsers
	saved := models.NavigationPreferences{MainSidebarExpanded: true, SelectedMainItem: &section}
	final := models.NavigationPreferences{SubSidebarOpen: true}

	dash := &fakeDashboard{final: final}
	var gotStore *state.Store

	prefsSvc.EXPECT().Load(gomock.Any()).Return(saved, nil)
	prefsSvc.EXPECT().Save(gomock.Any(), final).Return(nil)

	app, err := NewApp(services, config.ClientWorkers{}, models.AppBuildInfo{}, func(_ context.Context, store *state.Store, prefs models.NavigationPreferences) Dashboard {
		gotStore = store
		dash.prefs = prefs
		return dash
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, saved, dash.prefs)
	require.NotNil(t, gotStore)
	assert.Empty(t, gotStore.State().Records)
}

func TestApp_Run_LoadFailureFallsBackToDefaults(t *testing.T) {
	services, prefsSvc := newTestServices(t)
	dash := &fakeDashboard{}

	prefsSvc.EXPECT().Load(gomock.Any()).Return(models.NavigationPreferences{MainSidebarExpanded: true}, errors.New("disk"))
	prefsSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	app, err := NewApp(services, config.ClientWorkers{}, models.AppBuildInfo{}, func(_ context.Context, _ *state.Store, prefs models.NavigationPreferences) Dashboard {
		dash.prefs = prefs
		return dash
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, models.NavigationPreferences{}, dash.prefs)
}

func TestApp_Run_SavesEvenWhenDashboardFails(t *testing.T) {
	services, prefsSvc := newTestServices(t)
	dash := &fakeDashboard{err: errors.New("tty lost")}

	prefsSvc.EXPECT().Load(gomock.Any()).Return(models.NavigationPreferences{}, nil)
	prefsSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

	app, err := NewApp(services, config.ClientWorkers{}, models.AppBuildInfo{}, func(context.Context, *state.Store, models.NavigationPreferences) Dashboard {
		return dash
	}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty lost")
}

func TestApp_Run_RefreshWorkerDrivesDashboard(t *testing.T) {
	services, prefsSvc := newTestServices(t)
	dash := &fakeDashboard{block: true, done: make(chan struct{})}

	prefsSvc.EXPECT().Load(gomock.Any()).Return(models.NavigationPreferences{}, nil)
	prefsSvc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	app, err := NewApp(services, config.ClientWorkers{RefreshSchedule: "@every 1s"}, models.AppBuildInfo{}, func(context.Context, *state.Store, models.NavigationPreferences) Dashboard {
		return dash
	}, logger.Nop())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(context.Background()) }()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard was never refreshed")
	}
	assert.GreaterOrEqual(t, dash.refreshes.Load(), int32(1))
}

func TestApp_Run_InvalidSchedule(t *testing.T) {
	services, prefsSvc := newTestServices(t)
	prefsSvc.EXPECT().Load(gomock.Any()).Return(models.NavigationPreferences{}, nil)

	app, err := NewApp(services, config.ClientWorkers{RefreshSchedule: "every now and then"}, models.AppBuildInfo{}, func(context.Context, *state.Store, models.NavigationPreferences) Dashboard {
		return &fakeDashboard{}
	}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
