// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/donor-records/internal/state"
	"github.com/MKhiriev/donor-records/models"
)

// renderMainSidebar draws the section list. Collapsed, only the first
// letter of every section is shown.
func renderMainSidebar(st state.NavigationState, cursor int, focused bool) string {
	var b strings.Builder

	if st.MainSidebarExpanded {
		b.WriteString(titleStyle.Render("Dashboard App"))
	} else {
		b.WriteString(titleStyle.Render("DA"))
	}
	b.WriteString("\n\n")

	for i, info := range models.Sections() {
		label := info.Name
		if !st.MainSidebarExpanded {
			label = label[:1]
		}

		prefix := "  "
		if focused && i == cursor {
			prefix = focusedStyle.Render("> ")
		}
		if st.SelectedMainItem != nil && *st.SelectedMainItem == info.Section {
			label = selectedStyle.Render(label)
		}

		b.WriteString(prefix)
		b.WriteString(label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("["))

	if st.MainSidebarExpanded {
		return sidebarStyle.Width(18).Render(b.String())
	}
	return sidebarStyle.Width(5).Render(b.String())
}

// renderSubSidebar draws the items of the selected section, or a hint when
// no section is selected.
func renderSubSidebar(st state.NavigationState, cursor int, focused bool) string {
	var b strings.Builder

	info, ok := models.SectionInfo{}, false
	if st.SelectedMainItem != nil {
		info, ok = st.SelectedMainItem.Info()
	}

	if !ok {
		b.WriteString(titleStyle.Render(models.EmptySubSidebarTitle))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(models.EmptySubSidebarHint))
		return subSidebarStyle.Render(b.String())
	}

	b.WriteString(titleStyle.Render(info.Title))
	b.WriteString("\n\n")

	for i, item := range info.Items {
		selected := st.SelectedSubSidebarItem != nil && *st.SelectedSubSidebarItem == item

		prefix := "  "
		if focused && i == cursor {
			prefix = focusedStyle.Render("> ")
		}
		label := item
		if selected {
			label = selectedStyle.Render(item)
		}

		b.WriteString(prefix)
		b.WriteString(label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("] / esc: close"))

	return subSidebarStyle.Render(b.String())
}

// subItems returns the sub-sidebar entries of the selected section.
func subItems(st state.NavigationState) []string {
	if st.SelectedMainItem == nil {
		return nil
	}
	info, ok := st.SelectedMainItem.Info()
	if !ok {
		return nil
	}
	return info.Items
}
