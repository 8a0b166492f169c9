package common

import (
	"context"
	"fmt"
	"log"
	"strings"

	"coin-browser-go/internal/database"
	"coin-browser-go/internal/models"
	"coin-browser-go/internal/remote"
	"coin-browser-go/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Try to load .env file - if it doesn't exist, that's okay
	// Environment variables can be set via other means (shell export, docker, etc.)
	if err := godotenv.Load(); err != nil {
		// godotenv returns an error if .env doesn't exist
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	}
}

func InitializeLogger(debug bool) (*zap.Logger, func()) {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeGateway opens the coin data backend: the local SQLite catalog when
// catalog is set, otherwise the remote HTTP API.
func InitializeGateway(ctx context.Context, cfg *models.Config, catalog bool) (store.CoinGateway, error) {
	if catalog {
		zap.L().Info("Using local catalog", zap.String("path", cfg.Database.Path))
		dbService, err := InitializeDatabaseOnly(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return dbService, nil
	}

	zap.L().Info("Using remote coin API", zap.String("base_url", cfg.Gateway.BaseURL))
	svc, err := remote.NewService(cfg.Gateway)
	if err != nil {
		return nil, fmt.Errorf("unable to create coin API client: %w", err)
	}
	return svc, nil
}

// InitializeDatabaseOnly opens the local catalog database
func InitializeDatabaseOnly(ctx context.Context, cfg *models.Config) (*database.Service, error) {
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return dbService, nil
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
