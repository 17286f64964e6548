// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/internal/tui"
	"github.com/MKhiriev/donor-records/internal/workers"
	"github.com/MKhiriev/donor-records/models"
)

const savePreferencesTimeout = 5 * time.Second

// DashboardFactory builds the UI around the record store and the restored
// preferences.
type DashboardFactory func(ctx context.Context, store *state.Store, prefs models.NavigationPreferences) Dashboard

type App struct {
	services   *service.ClientServices
	workersCfg config.ClientWorkers
	newUI      DashboardFactory
	logger     *logger.Logger
}

// NewApp wires the dashboard. A nil newUI runs the terminal UI.
func NewApp(services *service.ClientServices, workersCfg config.ClientWorkers, buildInfo models.AppBuildInfo, newUI DashboardFactory, logger *logger.Logger) (*App, error) {
	if services == nil || services.RecordService == nil || services.PreferencesService == nil {
		return nil, ErrNoServices
	}

	if newUI == nil {
		newUI = func(ctx context.Context, store *state.Store, prefs models.NavigationPreferences) Dashboard {
			return tui.New(ctx, store, prefs, buildInfo, logger)
		}
	}

	return &App{
		services:   services,
		workersCfg: workersCfg,
		newUI:      newUI,
		logger:     logger,
	}, nil
}

// Run shows the dashboard until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	prefs, err := a.services.PreferencesService.Load(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("starting with default navigation")
		prefs = models.NavigationPreferences{}
	}

	store := state.NewStore(a.services.RecordService, a.logger)
	ui := a.newUI(ctx, store, prefs)

	w, err := workers.NewWorkers(a.workersCfg, ui.Refresh, a.logger)
	if err != nil {
		return fmt.Errorf("create workers: %w", err)
	}
	w.Run()
	defer w.Stop()

	final, runErr := ui.Run()

	// ctx may already be cancelled here
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), savePreferencesTimeout)
	defer cancel()
	if err := a.services.PreferencesService.Save(saveCtx, final); err != nil {
		a.logger.Error().Err(err).Str("func", "App.Run").Msg("failed to save navigation preferences")
	}

	if runErr != nil {
		return fmt.Errorf("dashboard: %w", runErr)
	}
	return nil
}
