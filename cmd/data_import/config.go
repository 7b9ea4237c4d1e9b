package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/sci-calc/pkg/config/env"
)

const (
	defaultBulkSize = 500
	defaultWorkers  = 4
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type BulkOptions struct {
	Enabled bool
	Size    int
}

type DataImportConfig struct {
	DatasetPath string
	// MappingPath is optional; without it the CSV needs an "expression" column.
	MappingPath string
	BulkOptions BulkOptions
	Workers     int
	Locale      messages.Locale
	ImplicitMul bool
	LogLevel    slog.Level
	factory.StorageConfig
}

func (as *AppConfig) Load() (*DataImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/data_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv(storage.Sqlite)
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	dsPath := os.Getenv("DATASET_PATH")
	if dsPath == "" {
		return nil, fmt.Errorf("DATASET_PATH environment variable is not set")
	}

	locale, err := messages.ParseLocale(os.Getenv("CALC_LOCALE"))
	if err != nil {
		return nil, err
	}

	bulkSize, err := intEnv("BULK_SIZE", defaultBulkSize)
	if err != nil {
		return nil, err
	}
	workers, err := intEnv("READ_WORKERS", defaultWorkers)
	if err != nil {
		return nil, err
	}

	return &DataImportConfig{
		DatasetPath: dsPath,
		MappingPath: os.Getenv("MAPPING_CONFIG_PATH"),
		BulkOptions: BulkOptions{
			Enabled: os.Getenv("BULK_ENABLED") != "false",
			Size:    bulkSize,
		},
		Workers:       workers,
		Locale:        locale,
		ImplicitMul:   os.Getenv("CALC_IMPLICIT_MUL") == "true",
		LogLevel:      env.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		StorageConfig: *storageCfg,
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
