// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the dashboard's two state containers.
//
// [Store] is the volatile session state: the cached record set, table UI
// fields and the loading and error flags. Record operations follow a
// three-phase protocol. Calling an operation applies its pending phase at
// once and returns a [Thunk]; running the thunk performs the single request
// and yields the fulfilled or rejected [Action], which is fed back through
// [Store.Apply]. Thunks never touch the store, so they can run off the UI
// goroutine while every mutation stays on it.
//
// [Navigation] is the durable part: sidebar flags and selections, which are
// exported to and restored from [models.NavigationPreferences].
package state
