// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService is the record server's business layer over the records
// table. It owns id generation; timestamps come from the database.
type RecordService interface {
	List(ctx context.Context) ([]models.Record, error)
	Search(ctx context.Context, term string) ([]models.Record, error)
	FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error)
	Create(ctx context.Context, fields models.RecordFields) (models.Record, error)
	Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error)
	SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error)
	Delete(ctx context.Context, id string) error
}

// RecordServiceWrapper decorates a RecordService with extra behavior such
// as validation or metrics.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
