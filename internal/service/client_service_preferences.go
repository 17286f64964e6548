// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/store"
	"github.com/MKhiriev/donor-records/models"
)

type clientPreferencesService struct {
	preferencesRepository store.LocalPreferencesRepository

	logger *logger.Logger
}

// NewClientPreferencesService constructs a [ClientPreferencesService] over
// the local preferences repository.
func NewClientPreferencesService(preferencesRepository store.LocalPreferencesRepository, logger *logger.Logger) ClientPreferencesService {
	return &clientPreferencesService{
		preferencesRepository: preferencesRepository,
		logger:                logger,
	}
}

func (s *clientPreferencesService) Load(ctx context.Context) (models.NavigationPreferences, error) {
	prefs, err := s.preferencesRepository.Load(ctx)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		s.logger.Debug().Str("func", "clientPreferencesService.Load").Msg("no saved preferences, using initial state")
		return models.NavigationPreferences{}, nil
	}
	if err != nil {
		return models.NavigationPreferences{}, fmt.Errorf("load navigation preferences: %w", err)
	}

	return prefs, nil
}

func (s *clientPreferencesService) Save(ctx context.Context, prefs models.NavigationPreferences) error {
	if err := s.preferencesRepository.Save(ctx, prefs); err != nil {
		return fmt.Errorf("save navigation preferences: %w", err)
	}

	return nil
}
