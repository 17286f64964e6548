// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Record is a single donation entry as the application works with it.
// It is the only in-process shape of a record; the storage and wire naming
// lives in [RecordRow].
type Record struct {
	// ID is assigned by the record store on creation and never changes.
	ID string

	Donor      string
	Panels     string
	Barcode    string
	Source     string
	Date       string // MM/DD/YYYY
	Amount     string
	ObservedBy string
	Status     Status

	// IsHighlighted is a visual flag independent of Status.
	IsHighlighted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordFields is the editable subset of a record. It is the payload of
// create and of full-field replace update.
type RecordFields struct {
	Donor         string
	Panels        string
	Barcode       string
	Source        string
	Date          string
	Amount        string
	ObservedBy    string
	Status        Status
	IsHighlighted bool
}

// Fields returns the editable part of r.
func (r Record) Fields() RecordFields {
	return RecordFields{
		Donor:         r.Donor,
		Panels:        r.Panels,
		Barcode:       r.Barcode,
		Source:        r.Source,
		Date:          r.Date,
		Amount:        r.Amount,
		ObservedBy:    r.ObservedBy,
		Status:        r.Status,
		IsHighlighted: r.IsHighlighted,
	}
}

// TextValues returns every value of r rendered as text, in column order.
// It backs the free-text search of the record table.
func (r Record) TextValues() []string {
	highlighted := "false"
	if r.IsHighlighted {
		highlighted = "true"
	}

	return []string{
		r.ID,
		r.Donor,
		r.Panels,
		r.Barcode,
		r.Source,
		r.Date,
		r.Amount,
		r.ObservedBy,
		string(r.Status),
		highlighted,
	}
}

// Matches reports whether any text value of r contains term, ignoring case.
// An empty term matches every record.
func (r Record) Matches(term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	for _, v := range r.TextValues() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}

	return false
}

// TableName returns the name of the database table holding records.
func (r Record) TableName() string {
	return "records"
}

// Default values offered by the record form for a new record.
const (
	DefaultSource = "medicaid"
	DefaultStatus = StatusUnableToDonate
)

// SourceOption is a selectable value of the record source field.
type SourceOption struct {
	Value string
	Label string
}

// SourceOptions lists the sources offered by the record form.
var SourceOptions = []SourceOption{
	{Value: "medicaid", Label: "Medicaid"},
	{Value: "Self Pay", Label: "Self Pay"},
	{Value: "Insurance", Label: "Insurance"},
}

// NewRecordFields returns the form defaults for a new record dated today.
func NewRecordFields(today time.Time) RecordFields {
	return RecordFields{
		Source: DefaultSource,
		Status: DefaultStatus,
		Date:   InputToDisplayDate(today.Format(InputDateLayout)),
	}
}
