package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/sci-calc/pkg/utils"
)

type cliConfig struct {
	SuitePath     string
	Engines       string
	APIURL        string
	ImplicitMul   bool
	Warmup        int
	Runs          int
	SkipReference bool
	Output        string
	LogLevel      string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/bench/calc_conformance_v1.yaml", "Path to conformance suite YAML")
	flag.StringVar(&cfg.Engines, "engines", engine.TypeLocal, "Engines to run, comma-separated: local, api")
	flag.StringVar(&cfg.APIURL, "api-url", "http://localhost:8080", "Base URL of calc_api for the api engine")
	flag.BoolVar(&cfg.ImplicitMul, "implicit-mul", false, "Enable implicit multiplication in the local engine")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per case, overrides the suite")
	flag.IntVar(&cfg.Runs, "runs", 0, "Number of measured runs per case, overrides the suite")
	flag.BoolVar(&cfg.SkipReference, "skip-reference", false, "Skip the expr-lang cross-check")
	flag.StringVar(&cfg.Output, "output", "", "Write a JSON report to this path")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()
	return cfg
}

// definitions turns the -engines list into executor definitions, keeping
// the order given on the command line.
func (c cliConfig) definitions() ([]engine.Definition, error) {
	names := utils.RemoveEmptyStrings(strings.Split(c.Engines, ","))
	if len(names) == 0 {
		return nil, fmt.Errorf("no engines selected")
	}

	defs := make([]engine.Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		switch name {
		case engine.TypeLocal:
			defs = append(defs, engine.Definition{Name: name, Type: engine.TypeLocal, ImplicitMultiplication: c.ImplicitMul})
		case engine.TypeAPI:
			defs = append(defs, engine.Definition{Name: name, Type: engine.TypeAPI, Connection: c.APIURL})
		default:
			return nil, fmt.Errorf("unknown engine %q", name)
		}
	}
	return defs, nil
}
