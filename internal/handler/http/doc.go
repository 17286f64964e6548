// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the record server's HTTP transport.
//
// It wires the /api/records/ and /api/version/ routes, their handlers and
// the middleware chain (request tracing, access logging, request metrics,
// response compression) in front of the service layer. Prometheus metrics
// are exposed on /metrics.
package http
