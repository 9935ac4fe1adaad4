// Command tspbench compares the exhaustive and nearest-neighbor TSP solvers.
//
// Without -solve it sweeps instance sizes and prints average runtimes and the
// heuristic's average percent increase over the optimum. With -solve N it
// solves one random instance and prints both tours.
//
// Settings come from the environment (optionally a .env file) and are
// overridden by flags:
//
//	TSP_MIN_CITIES  -min         (default 4)
//	TSP_MAX_CITIES  -max         (default 10)
//	TSP_ITERATIONS  -iterations  (default 100)
//	TSP_WIDTH       -width       (default 900)
//	TSP_HEIGHT      -height      (default 700)
//	TSP_SEED        -seed        (default 0)
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tourlab/bench"
	"github.com/katalvlaran/tourlab/tsp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	opts, err := loadOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.solve > 0 {
		err = solveOne(os.Stdout, opts)
	} else {
		err = sweep(ctx, os.Stdout, opts.bench)
	}
	if err != nil {
		log.Printf("tspbench: %v", err)
		os.Exit(1)
	}
}

// sweep runs the benchmark and prints the text report.
func sweep(ctx context.Context, w io.Writer, cfg bench.Config) error {
	rep, err := bench.Run(ctx, cfg, log.Default())
	if err != nil {
		return err
	}
	return rep.WriteText(w)
}

// solveOne builds a single instance and prints coordinates, both tours and the gap.
func solveOne(w io.Writer, opts options) error {
	p, err := tsp.New(opts.solve, opts.bench.Width, opts.bench.Height, tsp.WithSeed(opts.bench.Seed))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "City coordinates:")
	var i int
	for i = 0; i < p.Len(); i++ {
		pt, err := p.CityCoordinate(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d: %v\n", i, pt)
	}

	exElapsed := p.RunExhaustive()
	opt, _ := p.BestLength()
	fmt.Fprintf(w, "Exhaustive search:  %s  length=%.2f  (%s, %d permutations)\n",
		p.BestTourString(), opt, exElapsed, permutations(p))

	nnElapsed := p.RunNearestNeighbor()
	greedy, _ := p.BestLength()
	fmt.Fprintf(w, "Nearest-neighbor:   %s  length=%.2f  (%s)\n", p.BestTourString(), greedy, nnElapsed)

	_, err = fmt.Fprintf(w, "Percent increase:   %.2f\n", bench.PercentGap(greedy, opt))
	return err
}

func permutations(p *tsp.Problem) uint64 {
	res, err := p.Result()
	if err != nil {
		return 0
	}
	return res.Permutations
}
