package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/handler"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/server"
	"github.com/MKhiriev/go-contract-guard/internal/service"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("contract-guard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	engine, err := validators.NewPlaygroundEngine(validators.WithLocale(cfg.Validation.Locale))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating validation engine")
	}

	registry := validation.NewRegistry()
	if err = service.RegisterContracts(registry); err != nil {
		log.Fatal().Err(err).Msg("error registering method contracts")
	}
	validationService := validation.NewService(engine, registry, cfg.Validation, log.Component("validation"))

	c := container.New(log.Component("container"))
	if err = service.Provide(c, build, *cfg, validationService, log); err != nil {
		log.Fatal().Err(err).Msg("error providing services")
	}
	if err = validationService.Install(c); err != nil {
		log.Fatal().Err(err).Msg("error installing validation")
	}

	services, err := service.NewServices(context.Background(), c)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validationService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
