// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. /metrics sits outside the gzip middleware since
// promhttp negotiates compression itself.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version/", h.getServerVersion)

		r.Get("/api/records/", h.listRecords)
		r.Post("/api/records/", h.createRecord)
		r.Put("/api/records/{id}", h.updateRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)
		r.Patch("/api/records/{id}/highlight", h.setHighlight)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
