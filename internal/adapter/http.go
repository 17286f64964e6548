// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/utils"
	"github.com/MKhiriev/donor-records/models"
	"github.com/go-resty/resty/v2"
)

const (
	recordsPath = "/api/records/"
	versionPath = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListRecords implements [ServerAdapter] with GET /api/records/.
func (h *httpServerAdapter) ListRecords(ctx context.Context) ([]models.Record, error) {
	resp, err := h.request(ctx).Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}

	return decodeRecords(resp)
}

// SearchRecords implements [ServerAdapter] with GET /api/records/?search=.
func (h *httpServerAdapter) SearchRecords(ctx context.Context, term string) ([]models.Record, error) {
	resp, err := h.request(ctx).
		SetQueryParam("search", term).
		Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("search records request: %w", err)
	}

	return decodeRecords(resp)
}

// FilterRecordsByStatus implements [ServerAdapter] with
// GET /api/records/?status=.
func (h *httpServerAdapter) FilterRecordsByStatus(ctx context.Context, status models.Status) ([]models.Record, error) {
	resp, err := h.request(ctx).
		SetQueryParam("status", string(status)).
		Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("filter records request: %w", err)
	}

	return decodeRecords(resp)
}

// CreateRecord implements [ServerAdapter] with POST /api/records/.
func (h *httpServerAdapter) CreateRecord(ctx context.Context, fields models.RecordFields) (models.Record, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewRecordRowFromFields(fields)).
		Post(recordsPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("create record request: %w", err)
	}

	return decodeRecord(resp)
}

// UpdateRecord implements [ServerAdapter] with PUT /api/records/{id}.
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.NewRecordRowFromFields(fields)).
		Put(recordsPath + "{id}")
	if err != nil {
		return models.Record{}, fmt.Errorf("update record request: %w", err)
	}

	return decodeRecord(resp)
}

// DeleteRecord implements [ServerAdapter] with DELETE /api/records/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(recordsPath + "{id}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// SetHighlight implements [ServerAdapter] with
// PATCH /api/records/{id}/highlight.
func (h *httpServerAdapter) SetHighlight(ctx context.Context, id string, flag bool) (models.Record, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.HighlightRequest{IsHighlighted: flag}).
		Patch(recordsPath + "{id}/highlight")
	if err != nil {
		return models.Record{}, fmt.Errorf("set highlight request: %w", err)
	}

	return decodeRecord(resp)
}

// ServerVersion implements [ServerAdapter] with GET /api/version/.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func decodeRecords(resp *resty.Response) ([]models.Record, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.RecordRow
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}

	return models.RecordsFromRows(rows), nil
}

func decodeRecord(resp *resty.Response) (models.Record, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	var row models.RecordRow
	if err := json.Unmarshal(resp.Body(), &row); err != nil {
		return models.Record{}, fmt.Errorf("decode record response: %w", err)
	}

	return row.Record(), nil
}
