// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/donor-records/models"
)

// Mode names a legal combination of the two sidebar flags.
type Mode string

const (
	ModeCollapsedClosed Mode = "collapsed-closed"
	ModeCollapsedOpen   Mode = "collapsed-open"
	ModeExpandedClosed  Mode = "expanded-closed"
	ModeExpandedOpen    Mode = "expanded-open"
)

// NavigationState is the selection and layout state of the two sidebars.
// The flags are independent of each other.
type NavigationState struct {
	MainSidebarExpanded bool
	SubSidebarOpen      bool

	SelectedMainItem *models.Section
	// ContentKey mirrors SelectedMainItem and picks the sub-sidebar content.
	ContentKey *models.Section

	SelectedSubSidebarItem *string
}

// Navigation is the navigation state machine. The zero value is the initial
// state: collapsed, closed and nothing selected.
type Navigation struct {
	state NavigationState
}

// NewNavigation restores the state saved in prefs.
func NewNavigation(prefs models.NavigationPreferences) *Navigation {
	n := &Navigation{}
	n.Restore(prefs)
	return n
}

// State returns a copy of the current state.
func (n *Navigation) State() NavigationState {
	st := n.state
	st.SelectedMainItem = clonePtr(st.SelectedMainItem)
	st.ContentKey = clonePtr(st.ContentKey)
	st.SelectedSubSidebarItem = clonePtr(st.SelectedSubSidebarItem)
	return st
}

func (n *Navigation) ToggleMainSidebar() {
	n.state.MainSidebarExpanded = !n.state.MainSidebarExpanded
}

func (n *Navigation) ToggleSubSidebar() {
	n.state.SubSidebarOpen = !n.state.SubSidebarOpen
}

// SelectMainItem selects section, opens the sub-sidebar and clears the
// selected sub item. It returns the route to navigate to.
func (n *Navigation) SelectMainItem(section models.Section) string {
	n.state.SelectedMainItem = &section
	key := section
	n.state.ContentKey = &key
	n.state.SubSidebarOpen = true
	n.state.SelectedSubSidebarItem = nil

	return MainRoute(section)
}

// SelectSubItem selects item of the current section and returns the route to
// navigate to. The sub-sidebar flag is not touched.
func (n *Navigation) SelectSubItem(item string) string {
	n.state.SelectedSubSidebarItem = &item

	section := models.SectionDashboard
	if n.state.SelectedMainItem != nil {
		section = *n.state.SelectedMainItem
	}
	return SubRoute(section, item)
}

func (n *Navigation) CloseSubSidebar() {
	n.state.SubSidebarOpen = false
}

func (n *Navigation) OpenSubSidebar() {
	n.state.SubSidebarOpen = true
}

// Mode returns the named combination of the sidebar flags.
func (n *Navigation) Mode() Mode {
	switch {
	case n.state.MainSidebarExpanded && n.state.SubSidebarOpen:
		return ModeExpandedOpen
	case n.state.MainSidebarExpanded:
		return ModeExpandedClosed
	case n.state.SubSidebarOpen:
		return ModeCollapsedOpen
	default:
		return ModeCollapsedClosed
	}
}

// Route returns the route of the current selection, or the empty route when
// nothing is selected.
func (n *Navigation) Route() string {
	if n.state.SelectedMainItem == nil {
		return RootRoute
	}
	if n.state.SelectedSubSidebarItem == nil {
		return MainRoute(*n.state.SelectedMainItem)
	}

	return SubRoute(*n.state.SelectedMainItem, *n.state.SelectedSubSidebarItem)
}

// Preferences exports the part of the state that persists across sessions.
func (n *Navigation) Preferences() models.NavigationPreferences {
	return models.NavigationPreferences{
		MainSidebarExpanded:    n.state.MainSidebarExpanded,
		SubSidebarOpen:         n.state.SubSidebarOpen,
		SelectedMainItem:       clonePtr(n.state.SelectedMainItem),
		SelectedSubSidebarItem: clonePtr(n.state.SelectedSubSidebarItem),
	}
}

// Restore replaces the state with prefs. Unknown sections are dropped
// together with their sub item.
func (n *Navigation) Restore(prefs models.NavigationPreferences) {
	n.state = NavigationState{
		MainSidebarExpanded: prefs.MainSidebarExpanded,
		SubSidebarOpen:      prefs.SubSidebarOpen,
	}
	if prefs.SelectedMainItem == nil || !prefs.SelectedMainItem.Valid() {
		return
	}

	n.state.SelectedMainItem = clonePtr(prefs.SelectedMainItem)
	n.state.ContentKey = clonePtr(prefs.SelectedMainItem)
	n.state.SelectedSubSidebarItem = clonePtr(prefs.SelectedSubSidebarItem)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
