package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/handler"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/server"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("spool-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services, cfg.Sync, log)
	background.Run()

	srv, err := server.NewServer(handlers, cfg.Server, log,
		background.Stop,
		services.BroadcastHub.Shutdown,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
