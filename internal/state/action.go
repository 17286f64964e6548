// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"

	"github.com/MKhiriev/donor-records/internal/app"
	"github.com/MKhiriev/donor-records/models"
)

// Op names an asynchronous record operation.
type Op string

const (
	OpFetchAll     Op = "fetch_all"
	OpCreate       Op = "create"
	OpUpdate       Op = "update"
	OpDelete       Op = "delete"
	OpSetHighlight Op = "set_highlight"
)

// Phase is the stage of an asynchronous operation.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// Action is one phase transition of an operation.
type Action struct {
	Op    Op
	Phase Phase

	// ID is the target record id of update, delete and highlight changes.
	ID string
	// Seq orders mutations of the same record. Zero for fetches and creates.
	Seq uint64

	Records []models.Record // fulfilled fetch
	Record  models.Record   // fulfilled create, update and highlight change
	Error   string          // rejected

	// ctx is the context of the operation, reused by follow-up requests.
	ctx context.Context
}

// Thunk performs one request and reports its outcome. It must not be called
// more than once.
type Thunk func() Action

// fallbackErrors is used when a rejection carries no message.
var fallbackErrors = map[Op]string{
	OpFetchAll:     app.FailedFetchRecords,
	OpCreate:       app.FailedCreateRecord,
	OpUpdate:       app.FailedUpdateRecord,
	OpDelete:       app.FailedDeleteRecord,
	OpSetHighlight: app.FailedToggleHighlight,
}

func (a Action) context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}

	return a.ctx
}

func rejectionMessage(a Action) string {
	if a.Error != "" {
		return a.Error
	}

	return fallbackErrors[a.Op]
}
