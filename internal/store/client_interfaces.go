// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalPreferencesRepository keeps the dashboard's navigation preferences in
// the local database. Only one row of preferences exists.
type LocalPreferencesRepository interface {
	// Load returns [ErrPreferencesNotFound] before the first Save.
	Load(ctx context.Context) (models.NavigationPreferences, error)
	Save(ctx context.Context, prefs models.NavigationPreferences) error
}
