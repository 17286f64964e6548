// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the dashboard's terminal presentation layer.
//
// It renders the two-level sidebar navigation, the content area selected by
// the current route and the records table with its modal form. All state
// lives in the navigation state machine and the record store of package
// state; the models here only translate key presses into their transitions
// and run the returned thunks as bubbletea commands.
package tui
