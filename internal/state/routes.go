// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/donor-records/models"
)

// RootRoute is shown before any section is selected.
const RootRoute = "/"

// Kebab lowercases s, collapses every run of characters other than a-z and
// 0-9 into a single hyphen and strips leading and trailing hyphens.
// Kebab(Kebab(s)) == Kebab(s).
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// MainRoute returns the base route of section, e.g. "/users".
func MainRoute(section models.Section) string {
	return "/" + string(section)
}

// SubRoute returns the route of item within section, e.g.
// "/dashboard/report-history".
func SubRoute(section models.Section, item string) string {
	return MainRoute(section) + "/" + Kebab(item)
}

// PageKind selects what the content area renders.
type PageKind int

const (
	// PageWelcome is shown before a section is chosen.
	PageWelcome PageKind = iota
	// PageSection is a section's landing page.
	PageSection
	// PageRecords is the records table.
	PageRecords
	// PagePlaceholder is a titled page without content of its own.
	PagePlaceholder
)

// Page describes the content area for a route.
type Page struct {
	Kind        PageKind
	Route       string
	Title       string
	Description string
}

var dashboardPages = map[string]Page{
	"reports": {
		Kind:        PageRecords,
		Title:       "Reports",
		Description: "Manage donor records with full CRUD operations, search, and filtering capabilities.",
	},
	"calendar-type":    {Kind: PagePlaceholder, Title: "Calendar Type", Description: "Calendar type dashboard content goes here."},
	"face-recognition": {Kind: PagePlaceholder, Title: "Face Recognition", Description: "Face recognition dashboard content goes here."},
	"daily-visit":      {Kind: PagePlaceholder, Title: "Daily Visit", Description: "Daily visit dashboard content goes here."},
	"donate":           {Kind: PagePlaceholder, Title: "Donate", Description: "Donate dashboard content goes here."},
	"report-history":   {Kind: PagePlaceholder, Title: "Report History", Description: "Report history dashboard content goes here."},
	"test-history":     {Kind: PagePlaceholder, Title: "Test History", Description: "Test history dashboard content goes here."},
	"work-orders":      {Kind: PagePlaceholder, Title: "Work Orders", Description: "Work orders dashboard content goes here."},
}

var sectionPages = map[models.Section]Page{
	models.SectionDashboard: {Kind: PageSection, Title: "Dashboard", Description: "Welcome to the dashboard overview."},
	models.SectionUsers:     {Kind: PageSection, Title: "Users", Description: "User management and details will appear here."},
	models.SectionReports:   {Kind: PageSection, Title: "Reports", Description: "Reports and details will appear here."},
	models.SectionAnalytics: {Kind: PageSection, Title: "Analytics", Description: "Analytics and metrics will appear here."},
	models.SectionSettings:  {Kind: PageSection, Title: "Settings", Description: "Settings and configuration options will appear here."},
}

// ResolvePage maps a route to the page it shows. Unknown sub routes get a
// placeholder titled from their slug.
func ResolvePage(route string) Page {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return Page{
			Kind:        PageWelcome,
			Route:       RootRoute,
			Title:       "Welcome to the Dashboard",
			Description: "Please select a section from the sidebar to get started.",
		}
	}

	sectionPart, slug, hasSub := strings.Cut(trimmed, "/")
	section := models.Section(sectionPart)

	if !hasSub {
		page, ok := sectionPages[section]
		if !ok {
			page = placeholder(sectionPart)
		}
		page.Route = route
		return page
	}

	if section == models.SectionDashboard {
		if page, ok := dashboardPages[slug]; ok {
			page.Route = route
			return page
		}
	}

	page := placeholder(slug)
	page.Route = route
	return page
}

// ShowsRecords reports whether the content area for the state shows the
// records table. The dashboard landing page embeds the table while its
// "Reports" item is selected.
func ShowsRecords(st NavigationState, route string) bool {
	page := ResolvePage(route)
	if page.Kind == PageRecords {
		return true
	}

	return page.Kind == PageSection &&
		route == MainRoute(models.SectionDashboard) &&
		st.SelectedSubSidebarItem != nil &&
		*st.SelectedSubSidebarItem == "Reports"
}

func placeholder(slug string) Page {
	return Page{
		Kind:        PagePlaceholder,
		Title:       TitleFromSlug(slug),
		Description: "This is the " + slug + " submenu page.",
	}
}

// TitleFromSlug turns "report-history" into "Report History".
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
