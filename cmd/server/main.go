package main

import (
	"context"
	"fmt"

	"github.com/Blocci/Art-Connect/internal/config"
	"github.com/Blocci/Art-Connect/internal/extractor"
	"github.com/Blocci/Art-Connect/internal/handler"
	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/server"
	"github.com/Blocci/Art-Connect/internal/service"
	"github.com/Blocci/Art-Connect/internal/store"
	"github.com/Blocci/Art-Connect/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("artconnect-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	voiceExtractor := extractor.NewHTTPVoiceExtractor(cfg.Extractor, log)
	services := service.NewServices(*storages, voiceExtractor, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(*storages, cfg.Workers, log)
	backgroundWorkers.Run()

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
