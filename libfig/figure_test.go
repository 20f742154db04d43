package libfig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/figure-systems/gofig/gofig"
)

func TestFigureExprRoundtrip(t *testing.T) {
	for _, expr := range []string{
		"X",
		"XX",
		"X./XX",
		"XX./.XX",
		"XXX/X.X/XXX",
		".X./XXX/.X.",
	} {
		var X Figure
		require.NoError(t, X.InitFromString(expr))
		require.Equal(t, expr, X.String())
	}
}

func TestFigureExprErrors(t *testing.T) {
	var X Figure
	require.Error(t, X.InitFromString(""))
	require.Error(t, X.InitFromString("XY"))
	require.Error(t, X.InitFromString("..."))

	tooMany := ""
	for i := 0; i <= gofig.MaxFigureSize; i++ {
		tooMany += "X"
	}
	require.ErrorIs(t, X.InitFromString(tooMany), gofig.ErrSizeExceeded)
}

func TestFigurePoints(t *testing.T) {
	var X Figure
	require.NoError(t, X.InitFromString("XX./.XX"))
	require.Equal(t, []gofig.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1},
	}, X.Points())
}

func TestFigureDensity(t *testing.T) {
	var X Figure

	require.NoError(t, X.InitFromString("X"))
	require.Zero(t, X.Density())

	require.NoError(t, X.InitFromString("XX"))
	require.InDelta(t, 1.0, X.Density(), 1e-9)

	require.NoError(t, X.InitFromString("X./XX"))
	require.InDelta(t, 4.0/6.0, X.Density(), 1e-9)

	// The diagonal pair joins in under 8-connectivity.
	X.connA = 8
	require.InDelta(t, 6.0/6.0, X.Density(), 1e-9)

	require.NoError(t, X.InitFromString("XXX/X.X/XXX"))
	require.InDelta(t, 16.0/56.0, X.Density(), 1e-9)
}

// Every figure the enumerator emits anchors its bottom-row leftmost cell at
// the origin, and no two figures of any size coincide as point sets.
func TestFigureUniqueness(t *testing.T) {
	for _, cfg := range []gofig.Config{{A: 4}, {A: 8, B: 8}} {
		nmax := 6
		if cfg.A == 8 {
			nmax = 5
		}
		counts, _, err := Enumerate(cfg, nmax)
		require.NoError(t, err)

		seen, err := NewExprSet()
		require.NoError(t, err)

		stream, err := StreamFigures(cfg, nmax)
		require.NoError(t, err)

		total := 0
		for X := range stream.Outlet {
			pts := X.Points()
			require.Equal(t, gofig.Point{}, pts[0])
			require.True(t, seen.TryAddFigure(X), "duplicate figure %v", X)
			total++
			X.Reclaim()
		}
		require.Equal(t, counts.Total(), uint64(total))
	}
}

func TestCanonicSet(t *testing.T) {
	cfg := gofig.Config{A: 4, B: 4}
	counts, _, err := Enumerate(cfg, 5)
	require.NoError(t, err)

	set := NewCanonicSet()
	defer set.Close()

	stream, err := StreamFigures(cfg, 5)
	require.NoError(t, err)
	unique := stream.AddTo(set).PullAll()
	require.Equal(t, counts.Total(), uint64(unique))

	// A replay adds nothing new.
	stream, err = StreamFigures(cfg, 5)
	require.NoError(t, err)
	require.Zero(t, stream.AddTo(set).PullAll())
}
