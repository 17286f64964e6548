// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnexpectedModel is returned when the program ends on a model that is
// not the dashboard.
var ErrUnexpectedModel = errors.New("unexpected final model")

// TUI runs the dashboard program.
type TUI struct {
	program *tea.Program
	nav     *state.Navigation
	logger  *logger.Logger
}

// New prepares the dashboard around restored navigation preferences.
func New(ctx context.Context, store *state.Store, prefs models.NavigationPreferences, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	nav := state.NewNavigation(prefs)
	model := NewModel(ctx, store, nav, buildInfo, clipboard.WriteAll, logger)

	return &TUI{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
		nav:     nav,
		logger:  logger,
	}
}

// Run blocks until the user quits and returns the navigation preferences to
// persist for the next session.
func (t *TUI) Run() (models.NavigationPreferences, error) {
	final, err := t.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return t.nav.Preferences(), fmt.Errorf("run dashboard: %w", err)
	}

	if _, ok := final.(Model); final != nil && !ok {
		return t.nav.Preferences(), ErrUnexpectedModel
	}

	t.logger.Debug().Str("func", "TUI.Run").Msg("dashboard closed")
	return t.nav.Preferences(), nil
}

// Refresh asks the running dashboard to re-fetch the records table. It is
// safe to call from any goroutine.
func (t *TUI) Refresh() {
	t.program.Send(refreshMsg{})
}
