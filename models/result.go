// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the uniform outcome of a record access call.
//
// Exactly one of Data and Error is meaningful: on failure Error holds a
// human-readable message and Data is the zero value. Loading is always false
// in a returned Result; it only marks the slot the dashboard state uses while
// a call is in flight.
type Result[T any] struct {
	Data    T
	Error   string
	Loading bool
}

// Ok wraps a successful value.
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Fail wraps a failure message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}

// Failed reports whether the call failed.
func (r Result[T]) Failed() bool {
	return r.Error != ""
}
