// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	about   key.Binding

	toggleMain key.Binding
	toggleSub  key.Binding

	search    key.Binding
	filter    key.Binding
	newItem   key.Binding
	view      key.Binding
	edit      key.Binding
	delete    key.Binding
	highlight key.Binding
	copy      key.Binding
	refresh   key.Binding
	dismiss   key.Binding
	submit    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	about:   key.NewBinding(key.WithKeys("?")),

	toggleMain: key.NewBinding(key.WithKeys("[")),
	toggleSub:  key.NewBinding(key.WithKeys("]")),

	search:    key.NewBinding(key.WithKeys("/")),
	filter:    key.NewBinding(key.WithKeys("f")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	view:      key.NewBinding(key.WithKeys("enter", "v")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	highlight: key.NewBinding(key.WithKeys("h")),
	copy:      key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	dismiss:   key.NewBinding(key.WithKeys("x")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
