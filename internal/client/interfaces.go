// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/donor-records/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Dashboard is the interactive UI driven by [App].
type Dashboard interface {
	// Run blocks until the user quits and returns the navigation
	// preferences to keep for the next session.
	Run() (models.NavigationPreferences, error)
	// Refresh asks the running UI to re-fetch its records. Called from
	// worker goroutines.
	Refresh()
}
