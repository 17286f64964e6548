// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/validators"
	"github.com/MKhiriev/donor-records/models"
)

// RecordValidationService checks arguments before they reach the wrapped
// RecordService. Validation failures are returned wrapped in one of the
// ErrValidation* sentinels.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) List(ctx context.Context) ([]models.Record, error) {
	return v.inner.List(ctx)
}

func (v *RecordValidationService) Search(ctx context.Context, term string) ([]models.Record, error) {
	if err := v.validator.Validate(ctx, term); err != nil {
		return nil, mapValidationError(err)
	}

	return v.inner.Search(ctx, term)
}

func (v *RecordValidationService) FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error) {
	if err := v.validator.Validate(ctx, status); err != nil {
		return nil, mapValidationError(err)
	}

	return v.inner.FilterByStatus(ctx, status)
}

func (v *RecordValidationService) Create(ctx context.Context, fields models.RecordFields) (models.Record, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Record{}, mapValidationError(err)
	}

	return v.inner.Create(ctx, fields)
}

func (v *RecordValidationService) Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	record := models.Record{ID: id}
	if err := v.validator.Validate(ctx, record, validators.FieldID); err != nil {
		return models.Record{}, mapValidationError(err)
	}
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Record{}, mapValidationError(err)
	}

	return v.inner.Update(ctx, id, fields)
}

func (v *RecordValidationService) SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error) {
	if err := v.validator.Validate(ctx, models.Record{ID: id}, validators.FieldID); err != nil {
		return models.Record{}, mapValidationError(err)
	}

	return v.inner.SetHighlight(ctx, id, flag)
}

func (v *RecordValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Record{ID: id}, validators.FieldID); err != nil {
		return mapValidationError(err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidStatus):
		return fmt.Errorf("%w: %w", ErrValidationInvalidStatus, err)
	case errors.Is(err, validators.ErrEmptyID):
		return fmt.Errorf("%w: %w", ErrValidationEmptyID, err)
	case errors.Is(err, validators.ErrFieldTooLong):
		return fmt.Errorf("%w: %w", ErrValidationFieldTooLong, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
