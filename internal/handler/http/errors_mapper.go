// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/donor-records/internal/app"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidationInvalidStatus: http.StatusBadRequest,
	service.ErrValidationEmptyID:       http.StatusBadRequest,
	service.ErrValidationFieldTooLong:  http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrRecordNotFound:      http.StatusNotFound,
	store.ErrInvalidRecord:       http.StatusBadRequest,
	store.ErrRecordAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrValidationInvalidStatus: app.MsgInvalidStatus,
	service.ErrValidationEmptyID:       app.MsgEmptyID,
	service.ErrValidationFieldTooLong:  app.MsgFieldTooLong,
	service.ErrVersionIsNotSpecified:   app.MsgVersionIsNotSpecified,

	store.ErrRecordNotFound:      app.MsgRecordNotFound,
	store.ErrInvalidRecord:       app.MsgRecordRejected,
	store.ErrRecordAlreadyExists: app.MsgRecordAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
