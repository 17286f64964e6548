// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/donor-records/models"
	"github.com/prometheus/client_golang/prometheus"
)

// RecordMetricsService counts record operations and their outcomes.
type RecordMetricsService struct {
	inner RecordService

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecordMetricsService registers the record operation collectors on reg.
func NewRecordMetricsService(reg prometheus.Registerer) RecordServiceWrapper {
	m := &RecordMetricsService{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donor_records",
			Subsystem: "records",
			Name:      "operations_total",
			Help:      "Record operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "donor_records",
			Subsystem: "records",
			Name:      "operation_duration_seconds",
			Help:      "Duration of record operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.operations, m.duration)

	return m
}

func (m *RecordMetricsService) observe(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *RecordMetricsService) List(ctx context.Context) ([]models.Record, error) {
	start := time.Now()
	records, err := m.inner.List(ctx)
	m.observe("list", start, err)
	return records, err
}

func (m *RecordMetricsService) Search(ctx context.Context, term string) ([]models.Record, error) {
	start := time.Now()
	records, err := m.inner.Search(ctx, term)
	m.observe("search", start, err)
	return records, err
}

func (m *RecordMetricsService) FilterByStatus(ctx context.Context, status models.Status) ([]models.Record, error) {
	start := time.Now()
	records, err := m.inner.FilterByStatus(ctx, status)
	m.observe("filter", start, err)
	return records, err
}

func (m *RecordMetricsService) Create(ctx context.Context, fields models.RecordFields) (models.Record, error) {
	start := time.Now()
	record, err := m.inner.Create(ctx, fields)
	m.observe("create", start, err)
	return record, err
}

func (m *RecordMetricsService) Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	start := time.Now()
	record, err := m.inner.Update(ctx, id, fields)
	m.observe("update", start, err)
	return record, err
}

func (m *RecordMetricsService) SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error) {
	start := time.Now()
	record, err := m.inner.SetHighlight(ctx, id, flag)
	m.observe("highlight", start, err)
	return record, err
}

func (m *RecordMetricsService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.inner.Delete(ctx, id)
	m.observe("delete", start, err)
	return err
}

func (m *RecordMetricsService) Wrap(wrapped RecordService) RecordService {
	m.inner = wrapped
	return m
}
