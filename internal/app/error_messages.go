// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// record server and the dashboard.
//
// Msg* constants are written into HTTP response bodies by the server and
// matched back into errors by the client, so their wording is part of the API.
// Failed* constants are the fallback messages the dashboard shows when a
// call fails without a usable message from the server.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidStatus is returned when a record carries a status outside
	// the allowed set.
	MsgInvalidStatus = "invalid status"

	// MsgEmptyID is returned when an id path parameter is blank.
	MsgEmptyID = "record id is required"

	// MsgFieldTooLong is returned when a text field exceeds the limit.
	MsgFieldTooLong = "field value is too long"

	// MsgRecordNotFound is returned when an update targets an unknown id.
	MsgRecordNotFound = "record not found"

	// MsgRecordAlreadyExists is returned on an id collision.
	MsgRecordAlreadyExists = "record already exists"

	// MsgRecordRejected is returned when the database rejects a record.
	MsgRecordRejected = "record was rejected"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)

const (
	FailedFetchRecords    = "Failed to fetch records"
	FailedCreateRecord    = "Failed to create record"
	FailedUpdateRecord    = "Failed to update record"
	FailedDeleteRecord    = "Failed to delete record"
	FailedToggleHighlight = "Failed to toggle highlight"
	FailedSearchRecords   = "Failed to search records"
	FailedFilterRecords   = "Failed to filter records"
)
