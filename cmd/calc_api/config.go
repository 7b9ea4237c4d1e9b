package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/sci-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcAPIConfig struct {
	StorageConfig factory.StorageConfig
	SettingsPath  string
	Locale        messages.Locale
	ImplicitMul   bool
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*CalcAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv(storage.InMem)
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	locale, err := messages.ParseLocale(os.Getenv("CALC_LOCALE"))
	if err != nil {
		return nil, err
	}

	return &CalcAPIConfig{
		StorageConfig: *storageCfg,
		SettingsPath:  os.Getenv("SETTINGS_PATH"),
		Locale:        locale,
		ImplicitMul:   os.Getenv("CALC_IMPLICIT_MUL") == "true",
		LogLevel:      env.ParseLogLevel(os.Getenv("LOG_LEVEL")),
	}, nil
}
