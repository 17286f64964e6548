// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/donor-records/internal/app"
	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "record rows", data: []models.RecordRow{{ID: "1", Donor: "Alice"}}, status: http.StatusOK},
		{name: "empty list stays an array", data: []models.RecordRow{}, status: http.StatusOK, wantBody: "[]"},
		{name: "created", data: models.RecordRow{ID: "2"}, status: http.StatusCreated},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, w.Body.Len(), n)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_RowFieldNames(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.RecordRow{ID: "1", ObservedBy: "Nurse Joy", IsHighlighted: true}, http.StatusOK)
	require.NoError(t, err)

	assert.Contains(t, w.Body.String(), `"observed_by":"Nurse Joy"`)
	assert.Contains(t, w.Body.String(), `"is_highlighted":true`)
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, app.MsgInternalServerError, strings.TrimSpace(w.Body.String()))
}
