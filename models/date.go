// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// InputDateLayout is the layout the record form edits dates in.
const InputDateLayout = "2006-01-02"

// DisplayToInputDate converts a stored MM/DD/YYYY date into the YYYY-MM-DD
// form used while editing. Month and day are padded to two digits.
// Values that do not split into three "/" parts are returned unchanged.
func DisplayToInputDate(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}

	return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[0]), pad2(parts[1]))
}

// InputToDisplayDate converts a YYYY-MM-DD date into the stored MM/DD/YYYY
// form. Values that do not split into three "-" parts are returned unchanged.
func InputToDisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}

	return fmt.Sprintf("%s/%s/%s", parts[1], parts[2], parts[0])
}

func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}

	return strings.Repeat("0", 2-len(s)) + s
}
