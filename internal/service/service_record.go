// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/store"
	"github.com/MKhiriev/donor-records/models"
)

type recordService struct {
	recordRepository store.RecordRepository
	idGenerator      IDGenerator

	logger *logger.Logger
}

func NewRecordService(recordRepository store.RecordRepository, idGenerator IDGenerator, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		idGenerator:      idGenerator,
		logger:           logger,
	}
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	return s.recordRepository.List(ctx)
}

// Search matches term against the text columns. A blank term matches every
// record.
func (s *recordService) Search(ctx context.Context, term string) ([]models.Record, error) {
	if strings.TrimSpace(term) == "" {
		return s.recordRepository.List(ctx)
	}

	return s.recordRepository.Search(ctx, term)
}

func (s *recordService) FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error) {
	return s.recordRepository.FilterByStatus(ctx, status)
}

func (s *recordService) Create(ctx context.Context, fields models.RecordFields) (models.Record, error) {
	id := s.idGenerator.Generate()

	record, err := s.recordRepository.Create(ctx, id, fields)
	if err != nil {
		return models.Record{}, fmt.Errorf("create record %s: %w", id, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "recordService.Create").Str("id", id).Msg("record created")
	return record, nil
}

func (s *recordService) Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	return s.recordRepository.Update(ctx, id, fields)
}

func (s *recordService) SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error) {
	return s.recordRepository.SetHighlight(ctx, id, flag)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	return s.recordRepository.Delete(ctx, id)
}
