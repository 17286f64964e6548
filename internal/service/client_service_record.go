// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/adapter"
	"github.com/MKhiriev/donor-records/internal/app"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/models"
)

type clientRecordService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientRecordService constructs a [ClientRecordService] over
// serverAdapter.
func NewClientRecordService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRecordService {
	return &clientRecordService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientRecordService) List(ctx context.Context) models.Result[[]models.Record] {
	return call(s.logger, "clientRecordService.List", app.FailedFetchRecords, func() ([]models.Record, error) {
		return s.serverAdapter.ListRecords(ctx)
	})
}

func (s *clientRecordService) Create(ctx context.Context, fields models.RecordFields) models.Result[models.Record] {
	return call(s.logger, "clientRecordService.Create", app.FailedCreateRecord, func() (models.Record, error) {
		return s.serverAdapter.CreateRecord(ctx, fields)
	})
}

func (s *clientRecordService) Update(ctx context.Context, id string, fields models.RecordFields) models.Result[models.Record] {
	return call(s.logger, "clientRecordService.Update", app.FailedUpdateRecord, func() (models.Record, error) {
		return s.serverAdapter.UpdateRecord(ctx, id, fields)
	})
}

func (s *clientRecordService) Delete(ctx context.Context, id string) models.Result[struct{}] {
	return call(s.logger, "clientRecordService.Delete", app.FailedDeleteRecord, func() (struct{}, error) {
		return struct{}{}, s.serverAdapter.DeleteRecord(ctx, id)
	})
}

func (s *clientRecordService) SetHighlight(ctx context.Context, id string, flag bool) models.Result[models.Record] {
	return call(s.logger, "clientRecordService.SetHighlight", app.FailedToggleHighlight, func() (models.Record, error) {
		return s.serverAdapter.SetHighlight(ctx, id, flag)
	})
}

func (s *clientRecordService) Search(ctx context.Context, term string) models.Result[[]models.Record] {
	return call(s.logger, "clientRecordService.Search", app.FailedSearchRecords, func() ([]models.Record, error) {
		return s.serverAdapter.SearchRecords(ctx, term)
	})
}

func (s *clientRecordService) FilterByStatus(ctx context.Context, status models.Status) models.Result[[]models.Record] {
	return call(s.logger, "clientRecordService.FilterByStatus", app.FailedFilterRecords, func() ([]models.Record, error) {
		return s.serverAdapter.FilterRecordsByStatus(ctx, status)
	})
}

// call runs fn and folds its outcome, or a panic inside it, into a Result.
func call[T any](log *logger.Logger, funcName, fallback string, fn func() (T, error)) (result models.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", funcName).
				Str("panic", fmt.Sprint(r)).
				Msg("recovered from panic in record call")
			result = models.Fail[T](fallback)
		}
	}()

	data, err := fn()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			AnErr("kind", mapAdapterError(err)).
			Msg("record call failed")
		return models.Fail[T](resultMessage(err, fallback))
	}

	return models.Ok(data)
}
