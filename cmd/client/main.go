// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/donor-records/internal/adapter"
	"github.com/MKhiriev/donor-records/internal/client"
	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/internal/store"
	"github.com/MKhiriev/donor-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("records-dashboard")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	buildInfo = buildInfo.WithDefaultVersion(cfg.App.Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app, err := client.NewApp(services, cfg.Workers, buildInfo, nil, log)
	if err != nil {
		localStorage.Close()
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err := localStorage.Close(); err != nil {
		log.Error().Err(err).Msg("close local storage")
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
