// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
)

const (
	msgLoadingRecords = "Loading records..."
	msgNoMatches      = "No records match your search criteria."
	msgNoRecords      = "No records found."
	allStatusLabel    = "All Status"
)

type column struct {
	title string
	width int
	value func(models.Record) string
}

var columns = []column{
	{"DONOR", 16, func(r models.Record) string { return r.Donor }},
	{"PANELS", 10, func(r models.Record) string { return r.Panels }},
	{"BARCODE", 12, func(r models.Record) string { return r.Barcode }},
	{"SOURCE", 10, func(r models.Record) string { return r.Source }},
	{"DATE", 10, func(r models.Record) string { return r.Date }},
	{"AMOUNT(S)", 10, func(r models.Record) string { return r.Amount }},
	{"OBSERVED BY", 14, func(r models.Record) string { return r.ObservedBy }},
	{"STATUS", 21, func(r models.Record) string { return string(r.Status) }},
}

// tableView is everything the records page needs to render.
type tableView struct {
	state   state.TableState
	visible []models.Record
	cursor  int
	search  string
	spinner string
	status  string
}

func (v tableView) render() string {
	var b strings.Builder

	if v.state.Error != "" {
		b.WriteString(bannerStyle.Render(v.state.Error + "   " + helpStyle.Render("x: dismiss")))
		b.WriteString("\n")
	}

	filter := allStatusLabel
	if v.state.FilterStatus != "" {
		filter = string(v.state.FilterStatus)
	}
	b.WriteString(v.search)
	b.WriteString("   Status: ")
	b.WriteString(filter)
	b.WriteString("\n\n")

	var header strings.Builder
	for _, c := range columns {
		header.WriteString(cell(c.title, c.width))
		header.WriteString(" ")
	}
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(header.String()))
	b.WriteString("\n")

	switch {
	case v.state.Loading:
		b.WriteString("\n  ")
		b.WriteString(v.spinner)
		b.WriteString(" ")
		b.WriteString(msgLoadingRecords)
		b.WriteString("\n")
	case len(v.visible) == 0:
		b.WriteString("\n  ")
		b.WriteString(emptyMessage(v.state))
		b.WriteString("\n")
	default:
		for i, r := range v.visible {
			b.WriteString(renderRow(r, i == v.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(summary(len(v.visible), len(v.state.Records))))
	if v.status != "" {
		b.WriteString("   ")
		b.WriteString(v.status)
	}

	return b.String()
}

func renderRow(r models.Record, current bool) string {
	var line strings.Builder
	for _, c := range columns {
		text := cell(c.value(r), c.width)
		switch {
		case current || r.IsHighlighted:
		case c.title == "DONOR":
			text = donorStyle.Render(text)
		case c.title == "STATUS":
			text = statusStyle(r.Status).Render(text)
		}
		line.WriteString(text)
		line.WriteString(" ")
	}

	row := line.String()
	switch {
	case current:
		return "> " + cursorRowStyle.Render(row)
	case r.IsHighlighted:
		return "  " + highlightedStyle.Render(row)
	default:
		return "  " + row
	}
}

// emptyMessage distinguishes an empty table from a filter without matches.
func emptyMessage(st state.TableState) string {
	if st.Filtered() {
		return msgNoMatches
	}
	return msgNoRecords
}

func summary(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d records", shown, total)
}

// nextFilter cycles the status filter through all statuses and back to
// showing everything.
func nextFilter(current models.Status) models.Status {
	statuses := models.AllStatuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current && i+1 < len(statuses) {
			return statuses[i+1]
		}
	}
	return ""
}
