// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics  *httpMetrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Request metrics are registered on
// registry, which is also what /metrics serves.
func NewHandler(services *service.Services, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newHTTPMetrics(registry),
		gatherer: registry,
		logger:   logger,
	}
}

// writeError logs err and answers with the status and message mapped from
// it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	msg := messageFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	http.Error(w, msg, status)
}
