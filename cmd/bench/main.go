package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/sci-calc/internal/bench/report"
	"github.com/DjordjeVuckovic/sci-calc/internal/bench/runner"
	"github.com/DjordjeVuckovic/sci-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/sci-calc/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	slog.SetLogLoggerLevel(env.ParseLogLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	defs, err := cfg.definitions()
	if err != nil {
		slog.Error("Invalid engines", "error", err)
		os.Exit(1)
	}

	executors, cleanup, err := engine.CreateAll(defs)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	runCfg := runner.Config{
		WarmupRuns:    s.Runs.Warmup,
		Runs:          max(s.Runs.Iterations, 1),
		SkipReference: cfg.SkipReference,
	}
	if cfg.Warmup > 0 {
		runCfg.WarmupRuns = cfg.Warmup
	}
	if cfg.Runs > 0 {
		runCfg.Runs = cfg.Runs
	}

	names := make([]string, 0, len(defs))
	infos := make(map[string]report.EngineInfo, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
		infos[d.Name] = report.EngineInfo{Type: d.Type, Connection: d.Connection}
	}

	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases), "engines", names, "runs", runCfg.Runs)

	result, err := runner.New(runCfg).Run(ctx, s, executors, names)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Generate(result, infos)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !result.Passed() {
		stop()
		cleanup()
		os.Exit(2)
	}
}
