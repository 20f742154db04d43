package main

import (
	"fmt"
	"io"
	"time"
	"unsafe"

	"github.com/plan-systems/klog"

	"github.com/figure-systems/gofig/gofig"
	"github.com/figure-systems/gofig/libfig"
)

func sectionName(cfg gofig.Config, opts runOpts) string {
	name := fmt.Sprintf("n%d_a%d_b%d", opts.nmax, cfg.A, cfg.B)
	if opts.stats {
		name += "_stats"
	}
	if opts.alt {
		name += "_alt"
	}
	if opts.mt {
		name += "_mt"
	}
	return name
}

// runSection enumerates one connectivity and writes its report section.
func runSection(out io.Writer, cfg gofig.Config, opts runOpts) error {
	cfg.WithStats = opts.stats

	var (
		counts gofig.Counts
		stats  gofig.Stats
		err    error
	)
	start := time.Now()
	switch {
	case opts.mt:
		counts, err = libfig.EnumerateParallel(cfg, opts.nmax, libfig.ParallelOpts{
			Progress: opts.progress,
		})
	case opts.alt:
		counts, stats, err = libfig.EnumerateStepwise(cfg, opts.nmax)
	default:
		counts, stats, err = libfig.Enumerate(cfg, opts.nmax)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	total := counts.Total()

	fmt.Fprintf(out, "[%s]\n", sectionName(cfg, opts))
	fmt.Fprintf(out, "time_seconds = %f\n", elapsed.Seconds())
	fmt.Fprintf(out, "state_bytesize = %d\n", int(unsafe.Sizeof(libfig.Generator{})))
	for i, n := range counts {
		fmt.Fprintf(out, "count_%d = %d\n", i+1, n)
	}
	fmt.Fprintf(out, "total_count = %d\n", total)
	fmt.Fprintf(out, "millions_per_sec = %.2f\n", float64(total)/elapsed.Seconds()/1e6)

	if opts.stats {
		pct := func(v uint64) float64 {
			if total == 0 {
				return 0
			}
			return 100 * float64(v) / float64(total)
		}
		fmt.Fprintf(out, "stat_non_leaf = %d\n", stats.NonLeaf)
		fmt.Fprintf(out, "stat_leaf = %d\n", stats.Leaf)
		fmt.Fprintf(out, "stat_rejected = %d\n", stats.Rejected)
		fmt.Fprintf(out, "stat_non_leaf_pct = %.2f%%\n", pct(stats.NonLeaf))
		fmt.Fprintf(out, "stat_leaf_pct = %.2f%%\n", pct(stats.Leaf))
		fmt.Fprintf(out, "stat_rejected_pct = %.2f%%\n", pct(stats.Rejected))
	}
	fmt.Fprintln(out)

	if known := gofig.KnownCounts(cfg); known != nil {
		if !counts.IsEqual(known) {
			klog.Warningf("(%s) counts diverge from the published reference", cfg.Label())
		}
	}
	return nil
}
