// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/mock"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler with a nop logger and no services, for
// middleware tests.
func newTestHandler() *Handler {
	return &Handler{
		logger:  logger.Nop(),
		metrics: newHTTPMetrics(prometheus.NewRegistry()),
	}
}

// newMockedHandler builds a Handler backed by gomock services.
func newMockedHandler(t *testing.T) (*Handler, *mock.MockRecordService, *mock.MockAppInfoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		RecordService:  records,
		AppInfoService: appInfo,
	}, prometheus.NewRegistry(), logger.Nop())

	return h, records, appInfo
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	reg := prometheus.NewRegistry()

	h := NewHandler(svc, reg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metrics)
	assert.Equal(t, reg, h.gatherer)
}

func TestNewHandler_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewHandler(&service.Services{}, reg, logger.Nop())

	// registering the same collectors twice must fail
	assert.Panics(t, func() { newHTTPMetrics(reg) })
}

// ── writeError ───────────────────────────────────────────────────────────────

func TestWriteError_StatusAndBody(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.writeError(rec, req, "test", service.ErrValidationEmptyID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "record id is required\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
