// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dashboard process lifecycle.
//
// It restores the saved navigation preferences, starts the terminal UI and
// the background refresh worker, and saves the preferences again on exit.
package client
