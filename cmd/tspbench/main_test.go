package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/bench"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadOptions_Defaults(t *testing.T) {
	opts, err := loadOptions(nil, envMap(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), opts.bench)
	assert.Zero(t, opts.solve)
}

func TestLoadOptions_EnvThenFlags(t *testing.T) {
	env := envMap(map[string]string{
		"TSP_MIN_CITIES": "3",
		"TSP_MAX_CITIES": "5",
		"TSP_ITERATIONS": "7",
		"TSP_WIDTH":      "500.5",
		"TSP_SEED":       "11",
	})
	opts, err := loadOptions([]string{"-max", "6", "-seed", "12"}, env, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 3, opts.bench.MinCities)
	assert.Equal(t, 6, opts.bench.MaxCities)
	assert.Equal(t, 7, opts.bench.Iterations)
	assert.Equal(t, 500.5, opts.bench.Width)
	assert.Equal(t, 700.0, opts.bench.Height)
	assert.Equal(t, int64(12), opts.bench.Seed)
}

func TestLoadOptions_SeedKeepsAllBits(t *testing.T) {
	opts, err := loadOptions(nil, envMap(map[string]string{"TSP_SEED": "9223372036854775807"}), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), opts.bench.Seed)

	opts, err = loadOptions(nil, envMap(map[string]string{"TSP_SEED": "-4294967297"}), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int64(-4294967297), opts.bench.Seed)

	_, err = loadOptions(nil, envMap(map[string]string{"TSP_SEED": "9223372036854775808"}), io.Discard)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestLoadOptions_Errors(t *testing.T) {
	_, err := loadOptions(nil, envMap(map[string]string{"TSP_ITERATIONS": "many"}), io.Discard)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = loadOptions([]string{"-min", "0"}, envMap(nil), io.Discard)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = loadOptions([]string{"-solve", "40"}, envMap(nil), io.Discard)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = loadOptions([]string{"-nope"}, envMap(nil), io.Discard)
	require.Error(t, err)
}

func TestSolveOne(t *testing.T) {
	opts, err := loadOptions([]string{"-solve", "5", "-seed", "3"}, envMap(nil), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, solveOne(&out, opts))
	s := out.String()
	assert.Contains(t, s, "City coordinates:")
	assert.Contains(t, s, "4: (")
	assert.Contains(t, s, "120 permutations")
	assert.Contains(t, s, "Percent increase:")
}

func TestSweep(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.MinCities, cfg.MaxCities, cfg.Iterations = 2, 4, 3

	var out bytes.Buffer
	require.NoError(t, sweep(context.Background(), &out, cfg))
	assert.Equal(t, 3, strings.Count(out.String(), "Average runtime for exhaustive search"))
	assert.Equal(t, 3, strings.Count(out.String(), "Average percent increase"))
}
