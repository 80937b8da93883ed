package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// options holds dpscalc settings. Environment variables seed the values,
// command-line flags override them.
type options struct {
	ConfigPath string `env:"TD2CALC_CONFIG" envDefault:"config/calculator.yaml"`
	BuildsPath string `env:"TD2CALC_BUILDS" envDefault:"builds.yaml"`
	Workers    int    `env:"TD2CALC_WORKERS"`
	Verbose    bool   `env:"TD2CALC_DEBUG"`
}

// parseOptions parses environment and flags into options.
func parseOptions(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return options{}, fmt.Errorf("parse env: %w", err)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "calculator config YAML (missing file means defaults)")
	fs.StringVar(&opts.BuildsPath, "builds", opts.BuildsPath, "YAML file with builds to evaluate")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "concurrent evaluations")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("parse flags: %w", err)
	}
	return opts, nil
}
