// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/store"
	"github.com/MKhiriev/donor-records/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Services groups the record server's business services.
type Services struct {
	RecordService  RecordService
	AppInfoService AppInfoService
}

// NewServices builds the server services. The record service is wrapped so
// that metrics see every call, including the ones rejected by validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	records := NewRecordService(storages.RecordRepository, utils.NewUUIDGenerator(), logger)
	records = NewRecordValidationService().Wrap(records)
	records = NewRecordMetricsService(reg).Wrap(records)

	return &Services{
		RecordService:  records,
		AppInfoService: appInfo,
	}, nil
}
