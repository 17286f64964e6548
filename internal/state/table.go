// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "github.com/MKhiriev/donor-records/models"

// ModalMode governs whether the record form is editable and what submitting
// it does.
type ModalMode string

const (
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
	ModalView   ModalMode = "view"
)

// Title returns the heading of the record form in mode m.
func (m ModalMode) Title() string {
	switch m {
	case ModalEdit:
		return "Edit Record"
	case ModalView:
		return "View Record"
	default:
		return "Add New Record"
	}
}

// ReadOnly reports whether the form only displays the record.
func (m ModalMode) ReadOnly() bool {
	return m == ModalView
}

// TableState is the session state of the records table. None of it is
// persisted.
type TableState struct {
	Records []models.Record

	SearchTerm string
	// FilterStatus is empty when all statuses are shown.
	FilterStatus models.Status

	IsModalOpen bool
	ModalMode   ModalMode
	// EditingRecord is set only while the modal is in edit or view mode.
	EditingRecord *models.Record

	Loading bool
	// Error is the message of the last failed operation, empty when none.
	Error string
}

func initialTableState() TableState {
	return TableState{
		Records:   []models.Record{},
		ModalMode: ModalCreate,
	}
}

// Visible returns the records matching both the search term, compared
// case-insensitively against every text value, and the status filter.
func (t TableState) Visible() []models.Record {
	out := make([]models.Record, 0, len(t.Records))
	for _, r := range t.Records {
		if !r.Matches(t.SearchTerm) {
			continue
		}
		if t.FilterStatus != "" && r.Status != t.FilterStatus {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Filtered reports whether a search term or status filter is active.
func (t TableState) Filtered() bool {
	return t.SearchTerm != "" || t.FilterStatus != ""
}
