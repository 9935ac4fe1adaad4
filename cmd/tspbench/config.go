package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tourlab/bench"
)

// options is the resolved command-line configuration.
type options struct {
	bench bench.Config
	solve int // > 0 ⇒ solve a single instance of this many cities
}

// loadOptions layers defaults ← environment ← flags. getenv is os.Getenv in
// production and a map lookup in tests.
func loadOptions(args []string, getenv func(string) string, stderr io.Writer) (options, error) {
	var cfg = bench.DefaultConfig()
	var err error

	if cfg.MinCities, err = envInt(getenv, "TSP_MIN_CITIES", cfg.MinCities); err != nil {
		return options{}, err
	}
	if cfg.MaxCities, err = envInt(getenv, "TSP_MAX_CITIES", cfg.MaxCities); err != nil {
		return options{}, err
	}
	if cfg.Iterations, err = envInt(getenv, "TSP_ITERATIONS", cfg.Iterations); err != nil {
		return options{}, err
	}
	if cfg.Width, err = envFloat(getenv, "TSP_WIDTH", cfg.Width); err != nil {
		return options{}, err
	}
	if cfg.Height, err = envFloat(getenv, "TSP_HEIGHT", cfg.Height); err != nil {
		return options{}, err
	}
	if cfg.Seed, err = envInt64(getenv, "TSP_SEED", cfg.Seed); err != nil {
		return options{}, err
	}

	var (
		opts = options{bench: cfg}
		fs   = flag.NewFlagSet("tspbench", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.bench.MinCities, "min", cfg.MinCities, "smallest instance size")
	fs.IntVar(&opts.bench.MaxCities, "max", cfg.MaxCities, "largest instance size")
	fs.IntVar(&opts.bench.Iterations, "iterations", cfg.Iterations, "fresh instances per size")
	fs.Float64Var(&opts.bench.Width, "width", cfg.Width, "canvas width")
	fs.Float64Var(&opts.bench.Height, "height", cfg.Height, "canvas height")
	fs.Int64Var(&opts.bench.Seed, "seed", cfg.Seed, "parent seed (0 = default)")
	fs.IntVar(&opts.solve, "solve", 0, "solve one instance with N cities and print both tours")
	if err = fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.solve == 0 {
		if err = opts.bench.Validate(); err != nil {
			return options{}, err
		}
	} else if opts.solve < 1 || opts.solve > bench.MaxExhaustiveCities {
		return options{}, fmt.Errorf("solve %d outside [1, %d]: %w", opts.solve, bench.MaxExhaustiveCities, bench.ErrInvalidConfig)
	}
	return opts, nil
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, bench.ErrInvalidConfig)
	}
	return n, nil
}

func envInt64(getenv func(string) string, key string, fallback int64) (int64, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, bench.ErrInvalidConfig)
	}
	return n, nil
}

func envFloat(getenv func(string) string, key string, fallback float64) (float64, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, bench.ErrInvalidConfig)
	}
	return f, nil
}
