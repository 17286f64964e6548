// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel asks before a record is deleted.
type confirmModel struct {
	id    string
	donor string
}

func (m confirmModel) View() string {
	content := "Are you sure you want to delete this record?\n\n"
	content += "Donor: " + valueOrDash(m.donor) + "\n\n"
	content += helpStyle.Render("y: delete    n / esc: cancel")
	return overlayBoxStyle.Render(content)
}
