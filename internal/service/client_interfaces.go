// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRecordService is the dashboard's access to records held by the
// record server.
//
// Every method performs one request and reports its outcome as a
// [models.Result]. Methods never return an error value and never panic: a
// failure, including a recovered panic, becomes Result.Error. When the
// server answered with a message that message is used verbatim, otherwise a
// fixed per-operation fallback such as "Failed to fetch records" is used.
type ClientRecordService interface {
	// List returns all records, newest first.
	List(ctx context.Context) models.Result[[]models.Record]

	// Create stores a new record. The returned record carries the id and
	// timestamps assigned by the server.
	Create(ctx context.Context, fields models.RecordFields) models.Result[models.Record]

	// Update replaces every editable field of the record with id. It fails
	// when the id does not exist.
	Update(ctx context.Context, id string, fields models.RecordFields) models.Result[models.Record]

	// Delete removes the record with id. Data is always empty.
	Delete(ctx context.Context, id string) models.Result[struct{}]

	// SetHighlight changes only the highlight flag of the record with id.
	SetHighlight(ctx context.Context, id string, flag bool) models.Result[models.Record]

	// Search asks the server for records matching term in donor, panels,
	// barcode, source or observed-by, ignoring case.
	Search(ctx context.Context, term string) models.Result[[]models.Record]

	// FilterByStatus asks the server for records with exactly status.
	FilterByStatus(ctx context.Context, status models.Status) models.Result[[]models.Record]
}

// ClientPreferencesService keeps the navigation preferences between
// dashboard sessions.
type ClientPreferencesService interface {
	// Load returns the saved preferences, or the initial collapsed and
	// unselected state when nothing was saved yet.
	Load(ctx context.Context) (models.NavigationPreferences, error)

	// Save replaces the saved preferences.
	Save(ctx context.Context, prefs models.NavigationPreferences) error
}
