package tsp_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/cityset"
	"github.com/katalvlaran/tourlab/tsp"
)

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := tsp.New(0, frameW, frameH)
	require.ErrorIs(t, err, tsp.ErrInvalidDimensions)
	_, err = tsp.New(5, 100, frameH)
	require.ErrorIs(t, err, tsp.ErrInvalidDimensions)
	_, err = tsp.New(5, 10, 10, tsp.WithMargin(2))
	require.NoError(t, err)

	_, err = tsp.NewFromSet(nil)
	require.ErrorIs(t, err, tsp.ErrInvalidDimensions)
}

func TestProblem_SeedReproducesInstanceAndStart(t *testing.T) {
	a, err := tsp.New(6, frameW, frameH, tsp.WithSeed(seedDet))
	require.NoError(t, err)
	b, err := tsp.New(6, frameW, frameH, tsp.WithSeed(seedDet))
	require.NoError(t, err)

	require.Equal(t, a.Cities().Points(), b.Cities().Points())

	a.RunNearestNeighbor()
	b.RunNearestNeighbor()
	require.Equal(t, a.BestTourIndices(), b.BestTourIndices())

	c, err := tsp.New(6, frameW, frameH, tsp.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.NotEqual(t, a.Cities().Points(), c.Cities().Points())
}

func TestProblem_CityCoordinate(t *testing.T) {
	p, err := tsp.New(4, frameW, frameH, tsp.WithSeed(seedDet))
	require.NoError(t, err)

	pt, err := p.CityCoordinate(3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pt.X, cityset.DefaultMargin)
	assert.Less(t, pt.Y, frameH)

	_, err = p.CityCoordinate(4)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}

func TestProblem_LifecycleAndResult(t *testing.T) {
	p, err := tsp.New(7, frameW, frameH, tsp.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, 7, p.Len())

	_, err = p.Result()
	require.ErrorIs(t, err, tsp.ErrPrematureRead)
	_, ok := p.BestLength()
	require.False(t, ok)

	elapsed := p.RunExhaustive()
	assert.Positive(t, elapsed)
	res, err := p.Result()
	require.NoError(t, err)
	assert.Equal(t, tsp.MethodExhaustive, res.Method)
	assert.Equal(t, elapsed, res.Elapsed)
	assert.Equal(t, uint64(5040), res.Permutations)
	assert.Equal(t, tsp.FormatTour(res.Tour), p.BestTourString())
	opt := res.Length

	// Reset + rerun reproduces the exact result.
	p.Reset()
	_, ok = p.BestLength()
	require.False(t, ok)
	p.RunExhaustive()
	again, _ := p.BestLength()
	require.Equal(t, opt, again)
	require.Equal(t, res.Tour, p.BestTourIndices())

	// The heuristic may vary with the start city but never beats the optimum.
	var i int
	for i = 0; i < 10; i++ {
		p.RunNearestNeighbor()
		nn, ok := p.BestLength()
		require.True(t, ok)
		requirePermutation(t, p.BestTourIndices(), p.Len())
		assert.GreaterOrEqual(t, nn+epsTiny, opt)
	}
}

func TestProblem_IndependentInstancesConcurrently(t *testing.T) {
	var (
		wg      sync.WaitGroup
		lengths = make([]float64, 4)
		i       int
	)
	for i = 0; i < len(lengths); i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			p, err := tsp.New(6, frameW, frameH, tsp.WithSeed(int64(idx+1)))
			if err != nil {
				return
			}
			p.RunExhaustive()
			lengths[idx], _ = p.BestLength()
		}(i)
	}
	wg.Wait()

	for i = range lengths {
		p, err := tsp.New(6, frameW, frameH, tsp.WithSeed(int64(i+1)))
		require.NoError(t, err)
		p.RunExhaustive()
		want, _ := p.BestLength()
		assert.Equal(t, want, lengths[i])
	}
}
