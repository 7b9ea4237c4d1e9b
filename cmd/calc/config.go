package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
)

type cliConfig struct {
	DBPath       string
	SettingsPath string
	HistoryFile  string
	Storage      string
	Locale       string
	LogLevel     string
	ImplicitMul  bool
}

func parseFlags() cliConfig {
	dir := dataDir()
	cfg := cliConfig{}

	flag.StringVar(&cfg.DBPath, "db", filepath.Join(dir, "history.db"), "SQLite history database path")
	flag.StringVar(&cfg.SettingsPath, "settings", filepath.Join(dir, "settings.yaml"), "Settings YAML path, empty keeps settings in memory")
	flag.StringVar(&cfg.HistoryFile, "line-history", filepath.Join(dir, "line_history"), "Line editor history file")
	flag.StringVar(&cfg.Storage, "storage", string(storage.Sqlite), "History storage: sqlite or in_mem")
	flag.StringVar(&cfg.Locale, "locale", os.Getenv("CALC_LOCALE"), "Message locale: en or ko")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flag.BoolVar(&cfg.ImplicitMul, "implicit-mul", false, "Read 2π as 2*π")

	flag.Parse()
	return cfg
}

// dataDir is where the REPL keeps its files unless told otherwise.
func dataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "sci-calc")
	}
	return "."
}
