package libfig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/figure-systems/gofig/gofig"
)

func TestParallelMatchesSequential(t *testing.T) {
	seq, _, err := Enumerate(gofig.Config{A: 4}, 10)
	require.NoError(t, err)

	for _, opts := range []ParallelOpts{
		{Threshold: 5, NumWorkers: 4},
		{Threshold: 3, NumWorkers: 1},
		{Threshold: 8, NumWorkers: 2},
	} {
		mt, err := EnumerateParallel(gofig.Config{A: 4}, 10, opts)
		require.NoError(t, err)
		require.Equal(t, seq, mt, "threshold %d / %d workers", opts.Threshold, opts.NumWorkers)
	}
}

func TestParallelFallbackThreshold(t *testing.T) {
	// A threshold at or past nmax degenerates to the sequential sweep.
	seq, _, err := Enumerate(gofig.Config{A: 8, B: 8}, 5)
	require.NoError(t, err)
	mt, err := EnumerateParallel(gofig.Config{A: 8, B: 8}, 5, ParallelOpts{})
	require.NoError(t, err)
	require.Equal(t, seq, mt)
}

func TestDefaultThreshold(t *testing.T) {
	require.Equal(t, 8, DefaultThreshold(gofig.Config{A: 4}))
	require.Equal(t, 6, DefaultThreshold(gofig.Config{A: 8}))
}
