// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID       = errors.New("record id is required")
	ErrInvalidStatus = errors.New("status must be one of the allowed values")
	ErrFieldTooLong  = errors.New("field value is too long")
)
