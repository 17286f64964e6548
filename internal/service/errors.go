// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrValidationInvalidStatus = errors.New("record status is invalid")
	ErrValidationEmptyID       = errors.New("record id is empty")
	ErrValidationFieldTooLong  = errors.New("record field is too long")

	// ErrServerUnavailable means the record server could not be reached or
	// answered with a gateway failure.
	ErrServerUnavailable = errors.New("record server is unavailable")
)
