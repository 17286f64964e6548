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

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. Queries are built with squirrel and rows are mapped
// through [models.RecordRow].
//
// Every method logs through the context-scoped logger so that entries carry
// the trace id of the request.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) List(ctx context.Context) ([]models.Record, error) {
	query, args, err := buildListRecordsQuery()
	if err != nil {
		return nil, err
	}

	return r.queryRecords(ctx, "recordRepository.List", query, args)
}

func (r *recordRepository) Search(ctx context.Context, term string) ([]models.Record, error) {
	query, args, err := buildSearchRecordsQuery(term)
	if err != nil {
		return nil, err
	}

	return r.queryRecords(ctx, "recordRepository.Search", query, args)
}

func (r *recordRepository) FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error) {
	query, args, err := buildFilterRecordsByStatusQuery(status)
	if err != nil {
		return nil, err
	}

	return r.queryRecords(ctx, "recordRepository.FilterByStatus", query, args)
}

// Create inserts a record under the given id and returns the stored row
// including server timestamps.
func (r *recordRepository) Create(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(id, fields)
	if err != nil {
		return models.Record{}, err
	}

	record, err := scanRecord(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Create").
			Str("record_id", id).
			Msg("failed to insert record")
		return models.Record{}, wrapWriteError(err)
	}

	return record, nil
}

// Update replaces every editable field of the record and refreshes
// updated_at. An unknown id yields [ErrRecordNotFound].
func (r *recordRepository) Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	query, args, err := buildUpdateRecordQuery(id, fields)
	if err != nil {
		return models.Record{}, err
	}

	return r.updateOne(ctx, "recordRepository.Update", id, query, args)
}

// SetHighlight changes only the highlight flag and updated_at.
func (r *recordRepository) SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error) {
	query, args, err := buildSetHighlightQuery(id, flag)
	if err != nil {
		return models.Record{}, err
	}

	return r.updateOne(ctx, "recordRepository.SetHighlight", id, query, args)
}

func (r *recordRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Str("record_id", id).
			Bool("retryable", r.Retryable(err)).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Warn().
			Str("func", "recordRepository.Delete").
			Str("record_id", id).
			Msg("delete matched no record")
	}

	return nil
}

func (r *recordRepository) updateOne(ctx context.Context, funcName, id, query string, args []any) (models.Record, error) {
	log := logger.FromContext(ctx)

	record, err := scanRecord(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", funcName).Str("record_id", id).Msg("record not found")
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("record_id", id).
			Bool("retryable", r.Retryable(err)).
			Msg("failed to update record")
		return models.Record{}, wrapWriteError(err)
	}

	return record, nil
}

func (r *recordRepository) queryRecords(ctx context.Context, funcName, query string, args []any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Bool("retryable", r.Retryable(err)).
			Msg("failed to execute query for records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (models.Record, error) {
	var row models.RecordRow
	err := s.Scan(
		&row.ID,
		&row.Donor,
		&row.Panels,
		&row.Barcode,
		&row.Source,
		&row.Date,
		&row.Amount,
		&row.ObservedBy,
		&row.Status,
		&row.IsHighlighted,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return models.Record{}, err
	}

	return row.Record(), nil
}
