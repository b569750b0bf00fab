package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-offline-keeper/internal/client"
	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/crypto"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
	"github.com/MKhiriev/go-offline-keeper/internal/tui"
	"github.com/MKhiriev/go-offline-keeper/internal/utils"
	"github.com/MKhiriev/go-offline-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("offline-keeper-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := utils.NewUUIDGenerator().Generate()
	ctx = utils.WithRunID(ctx, runID)
	ctx, log = log.WithRunID(ctx, runID)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewKeyChainService(cfg.Policy.KDFIterations), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, cfg.Policy, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}

	if errors.Is(runErr, client.ErrClockManipulation) {
		stop()
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
