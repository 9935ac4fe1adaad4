// Package bench runs both tsp strategies over many fresh random instances and
// aggregates runtimes and the heuristic's percent gap to the optimum.
//
// Each instance is solved exactly first, then greedily on the same distance
// table. Instance seeds are derived from Config.Seed, so lengths and gaps are
// reproducible; runtimes are not.
package bench

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tourlab/internal/rng"
	"github.com/katalvlaran/tourlab/tsp"
)

// Row holds the aggregates for one instance size.
type Row struct {
	Cities int

	ExhaustiveMean   time.Duration
	ExhaustiveStdDev time.Duration
	NearestMean      time.Duration
	NearestStdDev    time.Duration

	// GapMeanPercent is the mean of 100·(nn − opt)/opt over all instances.
	GapMeanPercent float64
	// GapMaxPercent is the worst gap observed.
	GapMaxPercent float64
}

// Report is the outcome of a sweep, one Row per size in ascending order.
type Report struct {
	Config Config
	Rows   []Row
}

// samples accumulates per-instance measurements for one size.
type samples struct {
	exhaustive []float64 // ns
	nearest    []float64 // ns
	gaps       []float64 // percent
}

// Run executes the sweep described by cfg. logger may be nil.
//
// ctx is checked between instances only; a single search always runs to
// completion.
//
// Errors: ErrInvalidConfig, tsp.ErrInvalidDimensions, ctx.Err().
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var parent = cfg.Seed
	if parent == 0 {
		parent = rng.DefaultSeed
	}

	var (
		rep = Report{Config: cfg, Rows: make([]Row, 0, cfg.MaxCities-cfg.MinCities+1)}
		n   int
	)
	for n = cfg.MinCities; n <= cfg.MaxCities; n++ {
		var start = time.Now()
		smp, err := runSize(ctx, cfg, n, parent)
		if err != nil {
			return Report{}, err
		}
		row := aggregate(n, smp)
		rep.Rows = append(rep.Rows, row)

		logger.Printf("op=bench n=%d iterations=%d exhaustive_mean=%s nearest_mean=%s gap_mean=%.2f%% dur=%dms",
			n, cfg.Iterations, row.ExhaustiveMean, row.NearestMean, row.GapMeanPercent, time.Since(start).Milliseconds())
	}
	return rep, nil
}

// runSize solves cfg.Iterations fresh instances of n cities.
func runSize(ctx context.Context, cfg Config, n int, parent int64) (samples, error) {
	var (
		smp = samples{
			exhaustive: make([]float64, 0, cfg.Iterations),
			nearest:    make([]float64, 0, cfg.Iterations),
			gaps:       make([]float64, 0, cfg.Iterations),
		}
		i int
	)
	for i = 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return samples{}, err
		}
		p, err := tsp.New(n, cfg.Width, cfg.Height, tsp.WithSeed(instanceSeed(parent, n, i)))
		if err != nil {
			return samples{}, fmt.Errorf("bench: instance n=%d #%d: %w", n, i, err)
		}

		ex := p.RunExhaustive()
		opt, _ := p.BestLength()
		nn := p.RunNearestNeighbor()
		greedy, _ := p.BestLength()

		smp.exhaustive = append(smp.exhaustive, float64(ex))
		smp.nearest = append(smp.nearest, float64(nn))
		smp.gaps = append(smp.gaps, PercentGap(greedy, opt))
	}
	return smp, nil
}

// instanceSeed gives every (size, iteration) pair its own stream.
func instanceSeed(parent int64, n, i int) int64 {
	return rng.DeriveSeed(parent, uint64(n)<<32|uint64(i))
}

func aggregate(n int, smp samples) Row {
	return Row{
		Cities:           n,
		ExhaustiveMean:   time.Duration(stat.Mean(smp.exhaustive, nil)),
		ExhaustiveStdDev: time.Duration(stdDev(smp.exhaustive)),
		NearestMean:      time.Duration(stat.Mean(smp.nearest, nil)),
		NearestStdDev:    time.Duration(stdDev(smp.nearest)),
		GapMeanPercent:   stat.Mean(smp.gaps, nil),
		GapMaxPercent:    floats.Max(smp.gaps),
	}
}

// stdDev is the sample standard deviation, 0 for fewer than two samples.
func stdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}

// PercentGap returns 100·(heuristic − optimum)/optimum, or 0 when optimum is 0
// (single city or coincident points).
func PercentGap(heuristic, optimum float64) float64 {
	if optimum == 0 {
		return 0
	}
	return 100 * (heuristic - optimum) / optimum
}
