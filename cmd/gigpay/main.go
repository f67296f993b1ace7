package main

import (
	"fmt"
	"os"

	"github.com/k1ske/gigpay/internal/config"
	"github.com/k1ske/gigpay/internal/db"
	"github.com/k1ske/gigpay/internal/excel"
	httphandler "github.com/k1ske/gigpay/internal/http"
	"github.com/k1ske/gigpay/internal/http/middleware"
	"github.com/k1ske/gigpay/internal/logger"
	"github.com/k1ske/gigpay/internal/pdf"
	"github.com/k1ske/gigpay/internal/repository"
	"github.com/k1ske/gigpay/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	profileRepo := repository.NewProfileRepository(database)
	contractRepo := repository.NewContractRepository(database)
	jobRepo := repository.NewJobRepository(database)
	reportRepo := repository.NewReportRepository(database)

	contractService := service.NewContractService(contractRepo)
	jobService := service.NewJobService(jobRepo)
	balanceService := service.NewBalanceService(profileRepo)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdf.NewGenerator())

	handler := httphandler.NewHandler(contractService, jobService, balanceService, reportService, log)
	identityMiddleware := middleware.Identity(profileRepo)
	router := httphandler.NewRouter(handler, identityMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting gigpay service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
