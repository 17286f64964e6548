// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
	tea "github.com/charmbracelet/bubbletea"
)

// actionMsg carries the outcome of a record operation back into the loop.
type actionMsg struct {
	action state.Action
}

// refreshMsg asks for a re-fetch of the records table. Sent by the refresh
// worker through [TUI.Refresh].
type refreshMsg struct{}

type formSubmittedMsg struct {
	fields models.RecordFields
}

type formClosedMsg struct{}

type copiedMsg struct {
	barcode string
	err     error
}

type clearStatusMsg struct{}

// runThunk turns a store thunk into a command. A nil thunk yields nil.
func runThunk(t state.Thunk) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		return actionMsg{action: t()}
	}
}
