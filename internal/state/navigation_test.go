// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigation_InitialState(t *testing.T) {
	var n Navigation
	st := n.State()

	assert.False(t, st.MainSidebarExpanded)
	assert.False(t, st.SubSidebarOpen)
	assert.Nil(t, st.SelectedMainItem)
	assert.Nil(t, st.ContentKey)
	assert.Nil(t, st.SelectedSubSidebarItem)
	assert.Equal(t, ModeCollapsedClosed, n.Mode())
	assert.Equal(t, RootRoute, n.Route())
}

func TestNavigation_SelectMainItemAlwaysOpensAndClears(t *testing.T) {
	setups := map[string]func(n *Navigation){
		"initial": func(n *Navigation) {},
		"closed with sub item": func(n *Navigation) {
			n.SelectMainItem(models.SectionUsers)
			n.SelectSubItem("All Users")
			n.CloseSubSidebar()
		},
		"expanded": func(n *Navigation) {
			n.ToggleMainSidebar()
			n.SelectMainItem(models.SectionDashboard)
			n.SelectSubItem("Reports")
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			var n Navigation
			setup(&n)

			route := n.SelectMainItem(models.SectionAnalytics)

			st := n.State()
			assert.True(t, st.SubSidebarOpen)
			assert.Nil(t, st.SelectedSubSidebarItem)
			require.NotNil(t, st.SelectedMainItem)
			assert.Equal(t, models.SectionAnalytics, *st.SelectedMainItem)
			require.NotNil(t, st.ContentKey)
			assert.Equal(t, models.SectionAnalytics, *st.ContentKey)
			assert.Equal(t, "/analytics", route)
		})
	}
}

func TestNavigation_SelectSubItemKeepsSubSidebarFlag(t *testing.T) {
	var n Navigation
	n.SelectMainItem(models.SectionDashboard)
	n.CloseSubSidebar()

	route := n.SelectSubItem("Report History")

	st := n.State()
	assert.False(t, st.SubSidebarOpen)
	require.NotNil(t, st.SelectedSubSidebarItem)
	assert.Equal(t, "Report History", *st.SelectedSubSidebarItem)
	assert.Equal(t, "/dashboard/report-history", route)
	assert.Equal(t, route, n.Route())
}

func TestNavigation_SubRouteOtherSection(t *testing.T) {
	var n Navigation
	n.SelectMainItem(models.SectionSettings)

	assert.Equal(t, "/settings/user-preferences", n.SelectSubItem("User Preferences"))
}

func TestNavigation_TogglesAndModes(t *testing.T) {
	var n Navigation

	n.ToggleSubSidebar()
	assert.Equal(t, ModeCollapsedOpen, n.Mode())

	n.ToggleMainSidebar()
	assert.Equal(t, ModeExpandedOpen, n.Mode())

	n.CloseSubSidebar()
	assert.Equal(t, ModeExpandedClosed, n.Mode())

	n.OpenSubSidebar()
	n.OpenSubSidebar()
	assert.True(t, n.State().SubSidebarOpen)

	n.ToggleMainSidebar()
	n.ToggleSubSidebar()
	assert.Equal(t, ModeCollapsedClosed, n.Mode())
}

func TestNavigation_StateIsACopy(t *testing.T) {
	var n Navigation
	n.SelectMainItem(models.SectionUsers)

	st := n.State()
	*st.SelectedMainItem = models.SectionSettings

	assert.Equal(t, models.SectionUsers, *n.State().SelectedMainItem)
}

func TestNavigation_PreferencesRoundTrip(t *testing.T) {
	var n Navigation
	n.ToggleMainSidebar()
	n.SelectMainItem(models.SectionDashboard)
	n.SelectSubItem("Reports")

	restored := NewNavigation(n.Preferences())

	assert.Equal(t, n.State(), restored.State())
	assert.Equal(t, "/dashboard/reports", restored.Route())
}

func TestNavigation_RestoreDropsUnknownSection(t *testing.T) {
	bogus := models.Section("billing")
	item := "Invoices"

	n := NewNavigation(models.NavigationPreferences{
		MainSidebarExpanded:    true,
		SelectedMainItem:       &bogus,
		SelectedSubSidebarItem: &item,
	})

	st := n.State()
	assert.True(t, st.MainSidebarExpanded)
	assert.Nil(t, st.SelectedMainItem)
	assert.Nil(t, st.SelectedSubSidebarItem)
}
