package main

import (
	"fmt"
	"os"

	"parcel-service/internal/auth"
	"parcel-service/internal/client"
	"parcel-service/internal/config"
	"parcel-service/internal/db"
	httphandler "parcel-service/internal/http"
	"parcel-service/internal/http/middleware"
	"parcel-service/internal/logger"
	"parcel-service/internal/repository"
	"parcel-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	parcelRepo := repository.NewParcelRepository(database)
	landuseRepo := repository.NewLanduseRepository(database)
	reportRepo := repository.NewReportRepository(database)
	offerRepo := repository.NewOfferRepository(database)
	basketRepo := repository.NewBasketRepository(database)

	infraClient := client.NewInfrastructureClient(cfg)

	parcelService := service.NewParcelService(parcelRepo, landuseRepo)
	reportService := service.NewReportService(reportRepo, parcelRepo, infraClient, appLogger)
	offerService := service.NewOfferService(offerRepo, parcelRepo, basketRepo, service.Pricing{
		AnalysePlusRate: cfg.Pricing.AnalysePlusRate,
		TaxRate:         cfg.Pricing.TaxRate,
	})

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(parcelService, reportService, offerService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting parcel service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
