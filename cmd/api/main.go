package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Greenkack/pvoffer-backend/api/routes"
	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/internal/export"
	"github.com/Greenkack/pvoffer-backend/internal/importer"
	"github.com/Greenkack/pvoffer-backend/pkg/config"
	"github.com/Greenkack/pvoffer-backend/pkg/db"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
	"github.com/Greenkack/pvoffer-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to migrate database schema", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	repo := catalog.NewRepository(dbClient)
	importService := importer.NewService(repo, logg, metrics.NewImportMetrics(registry))
	bridge := calc.NewBridge(cfg.Engine, logg, metrics.NewCalculationMetrics(registry))
	exportService := export.NewService(cfg.Export)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, repo, importService, bridge, exportService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
