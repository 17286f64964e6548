// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
)

// ClientStorages groups the dashboard's local repositories. Only navigation
// preferences are stored; the record cache is never persisted.
type ClientStorages struct {
	PreferencesRepository LocalPreferencesRepository

	db *DB
}

// NewClientStorages opens the SQLite file named in cfg, creating it if
// needed, runs the local migrations and builds the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.LocalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateLocal(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		PreferencesRepository: NewLocalPreferencesRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
