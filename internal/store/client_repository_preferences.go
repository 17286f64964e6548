// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/models"
)

type localPreferencesRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalPreferencesRepository constructs a [LocalPreferencesRepository]
// backed by the dashboard's SQLite database.
func NewLocalPreferencesRepository(db *DB, logger *logger.Logger) LocalPreferencesRepository {
	return &localPreferencesRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localPreferencesRepository) Load(ctx context.Context) (models.NavigationPreferences, error) {
	var (
		prefs    models.NavigationPreferences
		mainItem sql.NullString
		subItem  sql.NullString
	)

	err := r.QueryRowContext(ctx, loadNavigationPreferences).Scan(
		&prefs.MainSidebarExpanded,
		&prefs.SubSidebarOpen,
		&mainItem,
		&subItem,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NavigationPreferences{}, ErrPreferencesNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "localPreferencesRepository.Load").Msg("failed to load navigation preferences")
		return models.NavigationPreferences{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if mainItem.Valid {
		section := models.Section(mainItem.String)
		if section.Valid() {
			prefs.SelectedMainItem = &section
		} else {
			r.logger.Warn().
				Str("func", "localPreferencesRepository.Load").
				Str("section", mainItem.String).
				Msg("ignoring unknown saved section")
		}
	}
	if subItem.Valid {
		item := subItem.String
		prefs.SelectedSubSidebarItem = &item
	}

	return prefs, nil
}

func (r *localPreferencesRepository) Save(ctx context.Context, prefs models.NavigationPreferences) error {
	var mainItem, subItem sql.NullString
	if prefs.SelectedMainItem != nil {
		mainItem = sql.NullString{String: string(*prefs.SelectedMainItem), Valid: true}
	}
	if prefs.SelectedSubSidebarItem != nil {
		subItem = sql.NullString{String: *prefs.SelectedSubSidebarItem, Valid: true}
	}

	_, err := r.ExecContext(ctx, saveNavigationPreferences,
		prefs.MainSidebarExpanded,
		prefs.SubSidebarOpen,
		mainItem,
		subItem,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "localPreferencesRepository.Save").Msg("failed to save navigation preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
