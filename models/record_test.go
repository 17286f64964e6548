// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayToInputDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "padded", in: "07/04/2023", want: "2023-07-04"},
		{name: "unpadded month and day", in: "7/4/2023", want: "2023-07-04"},
		{name: "not three parts", in: "2023-07-04", want: "2023-07-04"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayToInputDate(tt.in))
		})
	}
}

func TestInputToDisplayDate(t *testing.T) {
	assert.Equal(t, "07/04/2023", InputToDisplayDate("2023-07-04"))
	assert.Equal(t, "07/04/2023", InputToDisplayDate("07/04/2023"))
	assert.Equal(t, "", InputToDisplayDate(""))
}

func TestDateRoundTrip(t *testing.T) {
	assert.Equal(t, "12/31/1999", InputToDisplayDate(DisplayToInputDate("12/31/1999")))
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid(), s)
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("approved").Valid())
}

func TestRecord_Matches(t *testing.T) {
	r := Record{ID: "1", Donor: "Alice", Barcode: "BC-77", Status: StatusApproved}

	assert.True(t, r.Matches(""))
	assert.True(t, r.Matches("alice"))
	assert.True(t, r.Matches("bc-7"))
	assert.True(t, r.Matches("APPROVED"))
	assert.False(t, r.Matches("bob"))
}

func TestRecordRow_Mapping(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := Record{
		ID:            "abc",
		Donor:         "Alice",
		ObservedBy:    "Dr. Who",
		Status:        StatusRefused,
		IsHighlighted: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	row := NewRecordRow(r)
	assert.Equal(t, "Dr. Who", row.ObservedBy)
	assert.Equal(t, "Refused", row.Status)
	assert.True(t, row.IsHighlighted)
	assert.Equal(t, r, row.Record())
}

func TestRecordsFromRows_Nil(t *testing.T) {
	got := RecordsFromRows(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewRecordFields_Defaults(t *testing.T) {
	f := NewRecordFields(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "medicaid", f.Source)
	assert.Equal(t, StatusUnableToDonate, f.Status)
	assert.Equal(t, "03/09/2024", f.Date)
}

func TestSection_Info(t *testing.T) {
	info, ok := SectionDashboard.Info()
	assert.True(t, ok)
	assert.Equal(t, "Dashboard Overview", info.Title)
	assert.Contains(t, info.Items, "Report History")

	_, ok = Section("billing").Info()
	assert.False(t, ok)
	assert.Len(t, Sections(), 5)
}
