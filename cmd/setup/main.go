package main

import (
	"context"
	"flag"

	"coin-browser-go/internal/common"
	"coin-browser-go/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	fixtureFlag := flag.String("fixture", "", "Optional catalog.yaml to import after creating the schema")
	dbFlag := flag.String("db", "", "Path to the SQLite catalog (default: DATABASE_PATH or coins.db)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}
	if *dbFlag != "" {
		cfg.Database.Path = *dbFlag
	}

	_, loggerCleanup := common.InitializeLogger(cfg.Debug)
	defer loggerCleanup()

	zap.L().Info("Setting up SQLite catalog", zap.String("path", cfg.Database.Path))
	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize catalog", zap.Error(err))
	}
	defer dbService.Close()

	if *fixtureFlag == "" {
		zap.L().Info("Schema ready, no fixture given")
		return
	}

	zap.L().Info("Loading catalog fixture", zap.String("file", *fixtureFlag))
	fixture, err := common.LoadCatalogFixture(*fixtureFlag)
	if err != nil {
		zap.L().Fatal("Failed to load catalog fixture", zap.Error(err))
	}

	if err := common.ImportCatalogFixture(ctx, dbService, fixture); err != nil {
		zap.L().Fatal("Failed to import catalog fixture", zap.Error(err))
	}

	zap.L().Info("Setup complete")
}
