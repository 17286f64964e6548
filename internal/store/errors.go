// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when an update or highlight change
	// targets an id that is not in the records table.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidRecord is returned when the database rejects a record,
	// e.g. a status outside the allowed set.
	ErrInvalidRecord = errors.New("record was rejected by the database")

	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing id.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrPreferencesNotFound is returned when no navigation preferences have
	// been saved yet.
	ErrPreferencesNotFound = errors.New("navigation preferences were not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
