// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/donor-records/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent    = lipgloss.Color("#14b8a6")
	muted     = lipgloss.Color("241")
	highlight = lipgloss.Color("#fdf2f8")
	danger    = lipgloss.Color("#dc2626")

	appStyle        = lipgloss.NewStyle().Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)

	sidebarStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(muted).PaddingRight(1)
	subSidebarStyle = sidebarStyle.Width(28)
	focusedStyle    = lipgloss.NewStyle().Foreground(accent)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)

	bannerStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(danger).Foreground(danger).Padding(0, 1)

	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(muted)
	cursorRowStyle   = lipgloss.NewStyle().Reverse(true)
	highlightedStyle = lipgloss.NewStyle().Background(highlight).Foreground(lipgloss.Color("#831843"))
	donorStyle       = lipgloss.NewStyle().Foreground(accent)
)

var statusStyles = map[models.Status]lipgloss.Style{
	models.StatusUnableToDonate:       lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
	models.StatusRefused:              lipgloss.NewStyle().Foreground(lipgloss.Color("#ea580c")),
	models.StatusDuplicateError:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04")),
	models.StatusInsufficientDonation: lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
	models.StatusApproved:             lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
}

func statusStyle(s models.Status) lipgloss.Style {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return lipgloss.NewStyle().Foreground(muted)
}
