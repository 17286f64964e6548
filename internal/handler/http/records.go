// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/internal/utils"
	"github.com/MKhiriev/donor-records/models"
	"github.com/go-chi/chi/v5"
)

// listRecords serves GET /api/records/. A "search" query parameter switches
// to the text search, a "status" parameter to the status filter.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		records []models.Record
		err     error
	)
	switch {
	case query.Has("search"):
		records, err = h.services.RecordService.Search(r.Context(), query.Get("search"))
	case query.Has("status"):
		records, err = h.services.RecordService.FilterByStatus(r.Context(), models.Status(query.Get("status")))
	default:
		records, err = h.services.RecordService.List(r.Context())
	}
	if err != nil {
		h.writeError(w, r, "*Handler.listRecords", err)
		return
	}

	rows := make([]models.RecordRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, models.NewRecordRow(record))
	}

	h.writeJSON(w, r, rows, http.StatusOK)
}

// createRecord serves POST /api/records/.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var row models.RecordRow
	if err := decodeBody(r, &row); err != nil {
		h.writeError(w, r, "*Handler.createRecord", err)
		return
	}

	record, err := h.services.RecordService.Create(r.Context(), row.Fields())
	if err != nil {
		h.writeError(w, r, "*Handler.createRecord", err)
		return
	}

	h.writeJSON(w, r, models.NewRecordRow(record), http.StatusCreated)
}

// updateRecord serves PUT /api/records/{id}.
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	var row models.RecordRow
	if err := decodeBody(r, &row); err != nil {
		h.writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	record, err := h.services.RecordService.Update(r.Context(), chi.URLParam(r, "id"), row.Fields())
	if err != nil {
		h.writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	h.writeJSON(w, r, models.NewRecordRow(record), http.StatusOK)
}

// setHighlight serves PATCH /api/records/{id}/highlight.
func (h *Handler) setHighlight(w http.ResponseWriter, r *http.Request) {
	var req models.HighlightRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, "*Handler.setHighlight", err)
		return
	}

	record, err := h.services.RecordService.SetHighlight(r.Context(), chi.URLParam(r, "id"), req.IsHighlighted)
	if err != nil {
		h.writeError(w, r, "*Handler.setHighlight", err)
		return
	}

	h.writeJSON(w, r, models.NewRecordRow(record), http.StatusOK)
}

// deleteRecord serves DELETE /api/records/{id}.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.services.RecordService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "*Handler.deleteRecord", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	return nil
}
