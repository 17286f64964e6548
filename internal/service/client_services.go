// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/donor-records/internal/adapter"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/store"
)

// ClientServices groups the dashboard's services.
type ClientServices struct {
	RecordService      ClientRecordService
	PreferencesService ClientPreferencesService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RecordService:      NewClientRecordService(serverAdapter, logger),
		PreferencesService: NewClientPreferencesService(localStore.PreferencesRepository, logger),
	}
}
