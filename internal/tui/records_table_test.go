// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
)

func TestTableView_Render(t *testing.T) {
	records := []models.Record{aliceRecord(), bobRecord()}

	tests := []struct {
		name     string
		st       state.TableState
		visible  []models.Record
		contains []string
		excludes []string
	}{
		{
			name:     "rows",
			st:       state.TableState{Records: records},
			visible:  records,
			contains: []string{"DONOR", "OBSERVED BY", "Alice", "Bob", "Showing 2 of 2 records", allStatusLabel},
		},
		{
			name:     "loading",
			st:       state.TableState{Records: records, Loading: true},
			visible:  records,
			contains: []string{msgLoadingRecords},
			excludes: []string{"Alice"},
		},
		{
			name:     "empty",
			st:       state.TableState{Records: []models.Record{}},
			contains: []string{msgNoRecords, "Showing 0 of 0 records"},
		},
		{
			name:     "filtered empty",
			st:       state.TableState{Records: records, FilterStatus: models.StatusDuplicateError},
			contains: []string{msgNoMatches, string(models.StatusDuplicateError)},
		},
		{
			name:     "error banner",
			st:       state.TableState{Records: records, Error: "Failed to fetch records"},
			visible:  records,
			contains: []string{"Failed to fetch records", "x: dismiss", "Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tableView{state: tt.st, visible: tt.visible}.render()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, msgNoRecords, emptyMessage(state.TableState{}))
	assert.Equal(t, msgNoMatches, emptyMessage(state.TableState{SearchTerm: "x"}))
}

func TestNextFilter(t *testing.T) {
	statuses := models.AllStatuses()

	got := []models.Status{}
	current := models.Status("")
	for range len(statuses) + 1 {
		current = nextFilter(current)
		got = append(got, current)
	}

	assert.Equal(t, append(statuses, ""), got)
}

func TestRenderRow_Cursor(t *testing.T) {
	assert.Contains(t, renderRow(aliceRecord(), true), "> ")
	assert.NotContains(t, renderRow(aliceRecord(), false), "> ")
}
