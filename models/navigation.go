// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Section is a top-level area of the dashboard selectable from the main
// sidebar.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionUsers     Section = "users"
	SectionReports   Section = "reports"
	SectionAnalytics Section = "analytics"
	SectionSettings  Section = "settings"
)

// SectionInfo describes how a section is shown in both sidebars.
type SectionInfo struct {
	Section Section
	// Name is the main sidebar label.
	Name string
	// Title heads the sub-sidebar while the section is selected.
	Title string
	// Items are the sub-sidebar entries of the section.
	Items []string
}

var sections = []SectionInfo{
	{
		Section: SectionDashboard,
		Name:    "Dashboard",
		Title:   "Dashboard Overview",
		Items: []string{
			"Face Recognition",
			"Daily Visit",
			"Donate",
			"Work Orders",
			"Reports",
			"Report History",
			"Test History",
			"Calendar Type",
		},
	},
	{
		Section: SectionUsers,
		Name:    "Users",
		Title:   "User Management",
		Items:   []string{"All Users", "Active Users", "User Roles", "Permissions", "User Groups"},
	},
	{
		Section: SectionReports,
		Name:    "Reports",
		Title:   "Reports & Documents",
		Items:   []string{"Monthly Reports", "Financial Reports", "Analytics Reports", "Custom Reports", "Report Templates"},
	},
	{
		Section: SectionAnalytics,
		Name:    "Analytics",
		Title:   "Analytics Tools",
		Items:   []string{"Traffic Analysis", "Conversion Rates", "User Behavior", "Revenue Metrics", "Performance Tracking"},
	},
	{
		Section: SectionSettings,
		Name:    "Settings",
		Title:   "Configuration",
		Items:   []string{"General Settings", "User Preferences", "System Configuration", "Security Settings", "Integration Settings"},
	},
}

// Shown by the sub-sidebar when no section is selected.
const (
	EmptySubSidebarTitle = "Sub Navigation"
	EmptySubSidebarHint  = "Select an item from the main navigation to see related options."
)

// Sections returns the sections in main sidebar order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sections))
	copy(out, sections)
	return out
}

// Info returns the catalogue entry of s.
func (s Section) Info() (SectionInfo, bool) {
	for _, info := range sections {
		if info.Section == s {
			return info, true
		}
	}

	return SectionInfo{}, false
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	_, ok := s.Info()
	return ok
}

// NavigationPreferences is the part of the navigation state that outlives a
// session.
type NavigationPreferences struct {
	MainSidebarExpanded    bool
	SubSidebarOpen         bool
	SelectedMainItem       *Section
	SelectedSubSidebarItem *string
}
