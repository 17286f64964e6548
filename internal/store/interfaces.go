// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the server-side access to the records table.
// Every list is ordered by creation time, newest first.
type RecordRepository interface {
	List(ctx context.Context) ([]models.Record, error)
	Search(ctx context.Context, term string) ([]models.Record, error)
	FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error)
	Create(ctx context.Context, id string, fields models.RecordFields) (models.Record, error)
	Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error)
	SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error)
	// Delete removes the record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
