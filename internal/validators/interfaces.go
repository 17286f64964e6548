// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the record server.
//
// A Validator accepts an arbitrary value and an optional list of field names
// restricting which rules run. Services wrap their inner implementation with
// a validating decorator instead of checking input inline.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
