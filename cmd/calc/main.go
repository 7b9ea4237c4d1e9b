package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/repl"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
	"github.com/DjordjeVuckovic/sci-calc/internal/settings"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/sci-calc/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	slog.SetLogLoggerLevel(env.ParseLogLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	locale, err := messages.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}

	if cfg.DBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	history, _, err := factory.NewHistoryStore(ctx, &factory.StorageConfig{
		Type:       storage.Type(cfg.Storage),
		SqlitePath: cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = history.Close() }()

	engine := calc.New(calc.WithImplicitMultiplication(cfg.ImplicitMul))
	svc := service.NewCalculator(engine, history, settings.NewStore(cfg.SettingsPath), locale)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := repl.NewSession(svc, rl.Stdout())
	if err := session.Greet(ctx); err != nil {
		return err
	}

	for {
		rl.SetPrompt(session.Prompt(ctx))

		line, err := rl.ReadlineWithDefault(session.TakeRecalled())
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := session.Handle(ctx, line)
		if err != nil {
			slog.Error("command failed", "error", err, "line", line)
			fmt.Fprintln(rl.Stderr(), err)
		}
		if quit {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	completions := repl.Completions()
	items := make([]readline.PrefixCompleterInterface, 0, len(completions))
	for _, c := range completions {
		items = append(items, readline.PcItem(c))
	}
	return readline.NewPrefixCompleter(items...)
}
