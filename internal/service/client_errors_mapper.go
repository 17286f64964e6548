// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/donor-records/internal/adapter"
	"github.com/MKhiriev/donor-records/internal/app"
	"github.com/MKhiriev/donor-records/internal/store"
)

// httpErrors are the adapter errors that carry a server message after the
// sentinel text.
var httpErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrUnprocessable,
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
	adapter.ErrServiceUnavailable,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidStatus:
			return ErrValidationInvalidStatus
		case app.MsgEmptyID:
			return ErrValidationEmptyID
		case app.MsgFieldTooLong:
			return ErrValidationFieldTooLong
		case app.MsgRecordRejected:
			return store.ErrInvalidRecord
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrRecordNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrRecordAlreadyExists

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrServerUnavailable
	}

	return err
}

// resultMessage picks the text shown for a failed call: the server's own
// message when one came back, the fallback otherwise.
func resultMessage(err error, fallback string) string {
	for _, target := range httpErrors {
		if !errors.Is(err, target) {
			continue
		}
		if msg := extractBody(err); msg != "" && msg != err.Error() {
			return msg
		}
		break
	}

	return fallback
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
