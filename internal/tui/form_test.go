// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formToday = time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

func TestNewFormModel_CreateDefaults(t *testing.T) {
	f := newFormModel(state.ModalCreate, nil, formToday)

	fields := f.Fields()
	assert.Equal(t, models.DefaultSource, fields.Source)
	assert.Equal(t, models.DefaultStatus, fields.Status)
	assert.Equal(t, "07/04/2024", fields.Date)
	assert.Equal(t, "2024-07-04", f.fields[rowDate].input.Value())
	assert.Empty(t, fields.Donor)
	assert.Equal(t, rowDonor, f.focus)
}

func TestNewFormModel_EditKeepsUnknownSource(t *testing.T) {
	r := aliceRecord()
	r.Source = "Grant"
	r.IsHighlighted = true

	f := newFormModel(state.ModalEdit, &r, formToday)

	fields := f.Fields()
	assert.Equal(t, "Grant", fields.Source)
	assert.True(t, fields.IsHighlighted)
	assert.Equal(t, r.Fields(), fields)
}

func TestFormModel_Validate(t *testing.T) {
	r := aliceRecord()
	f := newFormModel(state.ModalEdit, &r, formToday)
	assert.Empty(t, f.validate())

	f.fields[rowBarcode].input.SetValue("  ")
	assert.Equal(t, "Barcode is required", f.validate())

	f.fields[rowBarcode].input.SetValue("BC-1")
	f.fields[rowDate].input.SetValue("07/04/2024")
	assert.Equal(t, "Date must be YYYY-MM-DD", f.validate())
}

func TestFormModel_FocusAndPickers(t *testing.T) {
	f := newFormModel(state.ModalCreate, nil, formToday)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, rowStatus, f.focus)

	before := f.Fields().Status
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.NotEqual(t, before, f.Fields().Status)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, before, f.Fields().Status)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, rowDonor, f.focus)
}

func TestFormModel_TypingEditsFocusedField(t *testing.T) {
	f := newFormModel(state.ModalCreate, nil, formToday)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Zed")})
	assert.Equal(t, "Zed", f.Fields().Donor)
}

func TestFormModel_EscCloses(t *testing.T) {
	f := newFormModel(state.ModalCreate, nil, formToday)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, formClosedMsg{}, cmd())
}

func TestFormModel_SubmitOnce(t *testing.T) {
	r := aliceRecord()
	f := newFormModel(state.ModalEdit, &r, formToday)

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, f.submitting)
	assert.Equal(t, formSubmittedMsg{fields: r.Fields()}, cmd())
	assert.Contains(t, f.View(), "Updating...")

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}

func TestFormModel_ReadOnly(t *testing.T) {
	r := aliceRecord()
	f := newFormModel(state.ModalView, &r, formToday)

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.Nil(t, cmd)
	assert.Equal(t, "Alice", f.Fields().Donor)

	view := f.View()
	assert.Contains(t, view, "View Record")
	assert.Contains(t, view, "Nurse Joy")

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, formClosedMsg{}, cmd())
}
