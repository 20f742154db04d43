package libfig

import (
	"github.com/figure-systems/gofig/gofig"
)

func checkEnumArgs(cfg gofig.Config, nmax int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if nmax < 1 || nmax > gofig.MaxFigureSize {
		return gofig.ErrSizeExceeded
	}
	return nil
}

// Enumerate runs the callback driver over all figures of size up to nmax,
// returning per-size counts (and stats when cfg.WithStats is set).
func Enumerate(cfg gofig.Config, nmax int) (gofig.Counts, gofig.Stats, error) {
	if err := checkEnumArgs(cfg, nmax); err != nil {
		return nil, gofig.Stats{}, err
	}

	var gen Generator
	if err := gen.Init(cfg); err != nil {
		return nil, gofig.Stats{}, err
	}

	counts := make(gofig.Counts, nmax)
	gen.Generate(func(level int) {
		counts[level]++
	}, nmax)
	return counts, gen.Stats, nil
}

// EnumerateStepwise produces the same counts as Enumerate through the
// stepwise driver: after Init the current figure is the (always valid)
// root, and each NextStep lands on the next valid figure.
func EnumerateStepwise(cfg gofig.Config, nmax int) (gofig.Counts, gofig.Stats, error) {
	if err := checkEnumArgs(cfg, nmax); err != nil {
		return nil, gofig.Stats{}, err
	}

	var gen Generator
	if err := gen.Init(cfg); err != nil {
		return nil, gofig.Stats{}, err
	}

	counts := make(gofig.Counts, nmax)
	for ok := true; ok; ok = gen.NextStep(nmax) {
		counts[gen.level]++
		// The callback driver tallies figures truncated at the size cap as
		// non-leaf; the stepwise transitions never reach that branch.
		if gen.withStats && int(gen.level) == nmax-1 {
			gen.Stats.NonLeaf++
		}
	}
	return counts, gen.Stats, nil
}

// StreamFigures feeds every valid figure of size up to nmax into a
// FigureStream, in enumeration order.
func StreamFigures(cfg gofig.Config, nmax int) (*gofig.FigureStream, error) {
	if err := checkEnumArgs(cfg, nmax); err != nil {
		return nil, err
	}

	var gen Generator
	if err := gen.Init(cfg); err != nil {
		return nil, err
	}

	stream := gofig.NewFigureStream()
	go func() {
		stream.Outlet <- gen.CurrentFigure()
		for gen.NextStep(nmax) {
			stream.Outlet <- gen.CurrentFigure()
		}
		stream.Close()
	}()
	return stream, nil
}
