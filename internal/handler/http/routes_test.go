// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/donor-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, records, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test").AnyTimes()
	records.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Record{ID: "1"}, nil).AnyTimes()
	records.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Record{ID: "1"}, nil).AnyTimes()
	records.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	records.EXPECT().SetHighlight(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Record{ID: "1"}, nil).AnyTimes()

	router := h.Init()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/version/", ""},
		{http.MethodGet, "/api/records/", ""},
		{http.MethodPost, "/api/records/", "{}"},
		{http.MethodPut, "/api/records/1", "{}"},
		{http.MethodDelete, "/api/records/1", ""},
		{http.MethodPatch, "/api/records/1/highlight", "{}"},
		{http.MethodGet, "/metrics", ""},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Less(t, rec.Code, http.StatusBadRequest, "%s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/records/"},
		{http.MethodGet, "/api/records/1/highlight"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("X-Trace-ID", "trace-from-client")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get("X-Trace-ID"))
}

func TestInit_MetricsEndpointExposesRequestCounter(t *testing.T) {
	h, records, _ := newMockedHandler(t)
	records.EXPECT().List(gomock.Any()).Return(nil, nil)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `donor_records_http_requests_total{method="GET",route="/api/records/",status="200"} 1`)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, records, _ := newMockedHandler(t)
	records.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Record, error) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/records/", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
