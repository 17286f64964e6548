// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Report History", "report-history"},
		{"Reports & Documents", "reports-documents"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Calendar Type", "calendar-type"},
		{"already-kebab", "already-kebab"},
		{"A__B--C", "a-b-c"},
		{"Q3 2024 Revenue!", "q3-2024-revenue"},
		{"Ünïcode Name", "n-code-name"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Kebab(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Kebab(got), "kebab must be idempotent")
		})
	}
}

func TestRoutes(t *testing.T) {
	assert.Equal(t, "/dashboard", MainRoute(models.SectionDashboard))
	assert.Equal(t, "/users", MainRoute(models.SectionUsers))
	assert.Equal(t, "/dashboard/face-recognition", SubRoute(models.SectionDashboard, "Face Recognition"))
	assert.Equal(t, "/analytics/traffic-analysis", SubRoute(models.SectionAnalytics, "Traffic Analysis"))
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		route string
		kind  PageKind
		title string
	}{
		{"/", PageWelcome, "Welcome to the Dashboard"},
		{"", PageWelcome, "Welcome to the Dashboard"},
		{"/dashboard", PageSection, "Dashboard"},
		{"/users", PageSection, "Users"},
		{"/dashboard/reports", PageRecords, "Reports"},
		{"/dashboard/daily-visit", PagePlaceholder, "Daily Visit"},
		{"/dashboard/report-history", PagePlaceholder, "Report History"},
		{"/dashboard/work-orders", PagePlaceholder, "Work Orders"},
		{"/dashboard/calendar-type", PagePlaceholder, "Calendar Type"},
		{"/dashboard/some-new-thing", PagePlaceholder, "Some New Thing"},
		{"/settings/general-settings", PagePlaceholder, "General Settings"},
		{"/reports/monthly-reports", PagePlaceholder, "Monthly Reports"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			page := ResolvePage(tt.route)
			assert.Equal(t, tt.kind, page.Kind)
			assert.Equal(t, tt.title, page.Title)
		})
	}
}

func TestResolvePage_UnknownSlugDescription(t *testing.T) {
	page := ResolvePage("/dashboard/some-new-thing")
	assert.Equal(t, "This is the some-new-thing submenu page.", page.Description)
	assert.Equal(t, "/dashboard/some-new-thing", page.Route)
}

func TestShowsRecords(t *testing.T) {
	reports := "Reports"
	donate := "Donate"
	dashboard := models.SectionDashboard

	assert.True(t, ShowsRecords(NavigationState{}, "/dashboard/reports"))
	assert.True(t, ShowsRecords(NavigationState{SelectedMainItem: &dashboard, SelectedSubSidebarItem: &reports}, "/dashboard"))
	assert.False(t, ShowsRecords(NavigationState{SelectedMainItem: &dashboard, SelectedSubSidebarItem: &donate}, "/dashboard"))
	assert.False(t, ShowsRecords(NavigationState{}, "/reports"))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Report History", TitleFromSlug("report-history"))
	assert.Equal(t, "X", TitleFromSlug("x"))
	assert.Equal(t, "", TitleFromSlug(""))
}
