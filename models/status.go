// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the closed set of outcomes a donation record can carry.
type Status string

const (
	StatusUnableToDonate       Status = "Unable to Donate"
	StatusRefused              Status = "Refused"
	StatusDuplicateError       Status = "Duplicate/Error"
	StatusInsufficientDonation Status = "Insufficient Donation"
	StatusApproved             Status = "Approved"
)

var allStatuses = []Status{
	StatusUnableToDonate,
	StatusRefused,
	StatusDuplicateError,
	StatusInsufficientDonation,
	StatusApproved,
}

// AllStatuses returns the valid statuses in display order.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// Valid reports whether s is one of the enumerated statuses.
// The empty status is not valid.
func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
