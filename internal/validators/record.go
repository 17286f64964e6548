// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/donor-records/models"
)

// Field names accepted by [RecordValidator.Validate].
const (
	FieldID         = "id"
	FieldStatus     = "status"
	FieldLengths    = "lengths"
	FieldSearchTerm = "search_term"
)

// MaxFieldLength bounds every free-text record field.
const MaxFieldLength = 512

// RecordValidator validates record payloads and query arguments.
//
// Supported inputs:
//   - models.RecordFields / *models.RecordFields (status, lengths)
//   - models.Record / *models.Record (id, status, lengths)
//   - models.Status (status)
//   - string, treated as a search term (search_term)
type RecordValidator struct{}

// NewRecordValidator returns a [RecordValidator] as a [Validator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordFields:
		return v.validateFields(value, orDefault(fields, FieldStatus, FieldLengths)...)
	case *models.RecordFields:
		return v.validateFields(*value, orDefault(fields, FieldStatus, FieldLengths)...)

	case models.Record:
		return v.validateRecord(value, orDefault(fields, FieldID, FieldStatus, FieldLengths)...)
	case *models.Record:
		return v.validateRecord(*value, orDefault(fields, FieldID, FieldStatus, FieldLengths)...)

	case models.Status:
		return validateStatus(value)

	case string:
		return validateSearchTerm(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(r models.Record, fields ...string) error {
	rest := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldID {
			if strings.TrimSpace(r.ID) == "" {
				return ErrEmptyID
			}
			continue
		}
		rest = append(rest, f)
	}

	return v.validateFields(r.Fields(), rest...)
}

func (v *RecordValidator) validateFields(f models.RecordFields, fields ...string) error {
	for _, field := range fields {
		switch field {
		case FieldStatus:
			if err := validateStatus(f.Status); err != nil {
				return err
			}
		case FieldLengths:
			if err := validateLengths(f); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateStatus(s models.Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}

	return nil
}

func validateLengths(f models.RecordFields) error {
	values := map[string]string{
		"donor":       f.Donor,
		"panels":      f.Panels,
		"barcode":     f.Barcode,
		"source":      f.Source,
		"date":        f.Date,
		"amount":      f.Amount,
		"observed_by": f.ObservedBy,
	}
	for name, value := range values {
		if utf8.RuneCountInString(value) > MaxFieldLength {
			return fmt.Errorf("%w: %s", ErrFieldTooLong, name)
		}
	}

	return nil
}

func validateSearchTerm(term string) error {
	if utf8.RuneCountInString(term) > MaxFieldLength {
		return fmt.Errorf("%w: search term", ErrFieldTooLong)
	}

	return nil
}

func orDefault(fields []string, defaults ...string) []string {
	if len(fields) > 0 {
		return fields
	}

	return defaults
}
