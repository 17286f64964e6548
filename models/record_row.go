// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordRow is a record under its storage naming. It is what the server
// reads from the records table and what travels over HTTP.
//
// Conversion to and from [Record] happens only through [NewRecordRow],
// [NewRecordRowFromFields] and [RecordRow.Record].
type RecordRow struct {
	ID            string    `json:"id,omitempty"`
	Donor         string    `json:"donor"`
	Panels        string    `json:"panels"`
	Barcode       string    `json:"barcode"`
	Source        string    `json:"source"`
	Date          string    `json:"date"`
	Amount        string    `json:"amount"`
	ObservedBy    string    `json:"observed_by"`
	Status        string    `json:"status"`
	IsHighlighted bool      `json:"is_highlighted"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// HighlightRequest is the body of a highlight change.
type HighlightRequest struct {
	IsHighlighted bool `json:"is_highlighted"`
}

// NewRecordRow maps a record to its storage naming.
func NewRecordRow(r Record) RecordRow {
	return RecordRow{
		ID:            r.ID,
		Donor:         r.Donor,
		Panels:        r.Panels,
		Barcode:       r.Barcode,
		Source:        r.Source,
		Date:          r.Date,
		Amount:        r.Amount,
		ObservedBy:    r.ObservedBy,
		Status:        string(r.Status),
		IsHighlighted: r.IsHighlighted,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// NewRecordRowFromFields maps an editable field set to a row without
// identity or timestamps.
func NewRecordRowFromFields(f RecordFields) RecordRow {
	return RecordRow{
		Donor:         f.Donor,
		Panels:        f.Panels,
		Barcode:       f.Barcode,
		Source:        f.Source,
		Date:          f.Date,
		Amount:        f.Amount,
		ObservedBy:    f.ObservedBy,
		Status:        string(f.Status),
		IsHighlighted: f.IsHighlighted,
	}
}

// Record maps the row back to the in-process shape.
func (row RecordRow) Record() Record {
	return Record{
		ID:            row.ID,
		Donor:         row.Donor,
		Panels:        row.Panels,
		Barcode:       row.Barcode,
		Source:        row.Source,
		Date:          row.Date,
		Amount:        row.Amount,
		ObservedBy:    row.ObservedBy,
		Status:        Status(row.Status),
		IsHighlighted: row.IsHighlighted,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// Fields maps the row to the editable field set.
func (row RecordRow) Fields() RecordFields {
	return row.Record().Fields()
}

// RecordsFromRows maps a slice of rows. A nil input yields an empty,
// non-nil slice.
func RecordsFromRows(rows []RecordRow) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Record())
	}

	return out
}
