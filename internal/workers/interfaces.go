// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the dashboard's background jobs.
//
// A Worker is started once with Run and stopped with Stop. Workers groups
// several of them so the client app can manage all jobs together.
package workers

// Worker is a background job.
//
// Run must not block; the job keeps running in its own goroutine until
// Stop returns.
type Worker interface {
	Run()
	Stop()
}
