// Package main Scientific Calculator API
// @title Scientific Calculator API
// @version 1.0
// @description Expression evaluation with degree/radian trigonometry, calculation history and settings
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/sci-calc/docs"
	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/router"
	"github.com/DjordjeVuckovic/sci-calc/internal/server"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
	"github.com/DjordjeVuckovic/sci-calc/internal/settings"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg)

	history, healthChecker, err := factory.NewHistoryStore(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history store", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer func() {
		if err := history.Close(); err != nil {
			slog.Warn("Failed to close history store", "error", err)
		}
	}()

	s.WithHealthChecker(healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Scientific Calculator API is running")
	})

	engine := calc.New(calc.WithImplicitMultiplication(cfg.ImplicitMul))
	svc := service.NewCalculator(engine, history, settings.NewStore(cfg.SettingsPath), cfg.Locale)
	router.Register(s.Echo, svc)

	slog.Info("Calculator API configured",
		"storage", cfg.StorageConfig.Type,
		"settings", cfg.SettingsPath,
		"locale", cfg.Locale,
		"port", sCfg.Port)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
