package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/collector"
	"github.com/DjordjeVuckovic/sci-calc/internal/processor"
	"github.com/DjordjeVuckovic/sci-calc/internal/reader"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/sci-calc/pkg/apis/importmapping"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("import failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *DataImportConfig) error {
	mapping, err := loadMapping(cfg.MappingPath)
	if err != nil {
		return err
	}

	dataFile, err := os.Open(cfg.DatasetPath)
	if err != nil {
		return err
	}
	defer dataFile.Close()

	store, _, err := factory.NewHistoryStore(ctx, &cfg.StorageConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	c := collector.NewExpressionCollector(
		reader.NewCSVReader(dataFile),
		reader.NewExpressionMapper(mapping),
		calc.New(calc.WithImplicitMultiplication(cfg.ImplicitMul)),
		cfg.Locale,
	)
	c.SkipInvalid = mapping.SkipInvalid
	c.Workers = cfg.Workers

	opts := []processor.PipelineOption{processor.WithName(mapping.Metadata.Name)}
	if cfg.BulkOptions.Enabled {
		opts = append(opts, processor.WithBulk(cfg.BulkOptions.Size))
	}

	slog.Info("Importing dataset", "path", cfg.DatasetPath, "storage", cfg.StorageConfig.Type, "mapping", mapping.Metadata.Name)

	stats, err := processor.NewPipeline(c, store, opts...).Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("Import finished", "saved", stats.Saved, "failed", stats.Failed, "duration", stats.Duration)
	return nil
}

func loadMapping(path string) (*importmapping.ImportMapping, error) {
	if path == "" {
		return importmapping.Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return reader.NewYAMLMappingLoader(file).Load(true)
}
