// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the dashboard to talk to the
// record server.
//
// [ServerAdapter] decouples the service layer from the protocol. The package
// ships an HTTP/JSON implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404). The
// response body, which the server fills with a short human-readable message,
// is kept as the text after the sentinel.
package adapter

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the record server. Every call
// performs exactly one request.
type ServerAdapter interface {
	// ListRecords returns all records, newest first.
	ListRecords(ctx context.Context) ([]models.Record, error)

	// SearchRecords returns records whose donor, panels, barcode, source or
	// observed-by contains term, ignoring case.
	SearchRecords(ctx context.Context, term string) ([]models.Record, error)

	// FilterRecordsByStatus returns records with exactly the given status.
	FilterRecordsByStatus(ctx context.Context, status models.Status) ([]models.Record, error)

	// CreateRecord stores a new record and returns it with the id and
	// timestamps assigned by the server.
	CreateRecord(ctx context.Context, fields models.RecordFields) (models.Record, error)

	// UpdateRecord replaces every editable field of the record with id.
	UpdateRecord(ctx context.Context, id string, fields models.RecordFields) (models.Record, error)

	// DeleteRecord removes the record with id. Unknown ids are not an error.
	DeleteRecord(ctx context.Context, id string) error

	// SetHighlight sets only the highlight flag of the record with id.
	SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
