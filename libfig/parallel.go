package libfig

import (
	"os"
	"runtime"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/plan-systems/klog"
	"github.com/schollz/progressbar/v3"

	"github.com/figure-systems/gofig/gofig"
)

// DefaultThreshold is the recommended fan-out depth for a connectivity: the
// figure size at which the sequential sweep stops and subtasks fork.
func DefaultThreshold(cfg gofig.Config) int {
	if cfg.A == 8 {
		return 6
	}
	return 8
}

// ParallelOpts tunes EnumerateParallel.
type ParallelOpts struct {
	Threshold  int  // fan-out depth T; 0 selects DefaultThreshold
	NumWorkers int  // 0 selects runtime.NumCPU()
	Progress   bool // render a completed-subtasks bar on stderr
}

// initialSubtaskCapacity is reserved up front for the subtask list; the
// branching factor at the default thresholds lands in the tens of thousands.
const initialSubtaskCapacity = 1 << 14

// EnumerateParallel sweeps sizes 1..T on the calling goroutine, snapshotting
// the generator each time it lands on a figure of size T. Each snapshot is
// an independent subtask: its reachable subtree is disjoint from every
// other's. Workers own contiguous blocks of the subtask list, resume each
// snapshot to full depth with thread-local counts, and merge under a mutex.
func EnumerateParallel(cfg gofig.Config, nmax int, opts ParallelOpts) (gofig.Counts, error) {
	if cfg.WithStats {
		return nil, gofig.ErrStatsParallel
	}
	if err := checkEnumArgs(cfg, nmax); err != nil {
		return nil, err
	}

	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold(cfg)
	}
	if threshold >= nmax {
		counts, _, err := Enumerate(cfg, nmax)
		return counts, err
	}

	var gen Generator
	if err := gen.Init(cfg); err != nil {
		return nil, err
	}

	counts := make(gofig.Counts, nmax)
	subtasks := make([]Generator, 0, initialSubtaskCapacity)
	for ok := true; ok; ok = gen.NextStep(threshold) {
		counts[gen.level]++
		if int(gen.level) == threshold-1 {
			subtasks = append(subtasks, gen)
		}
	}

	if len(subtasks) == 0 {
		return counts, nil
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(subtasks) {
		numWorkers = len(subtasks)
	}
	klog.V(1).Infof("(%s) fan-out: %d subtasks of size %d across %d workers",
		cfg.Label(), len(subtasks), threshold, numWorkers)

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newSubtaskBar(len(subtasks))
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	blockSize := (len(subtasks) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * blockSize
		hi := lo + blockSize
		if hi > len(subtasks) {
			hi = len(subtasks)
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(block []Generator) {
			defer wg.Done()

			local := make(gofig.Counts, nmax)
			for i := range block {
				sub := &block[i]
				for sub.NextStep(nmax) {
					// Ascending to the threshold level or above means the
					// snapshot's subtree is exhausted.
					if int(sub.level) < threshold {
						break
					}
					local[sub.level]++
				}
				if bar != nil {
					bar.Add(1)
				}
			}

			mu.Lock()
			for lvl := threshold; lvl < nmax; lvl++ {
				counts[lvl] += local[lvl]
			}
			mu.Unlock()
		}(subtasks[lo:hi])
	}
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}
	klog.V(2).Infof("(%s) merged %d subtasks: %d figures total",
		cfg.Label(), len(subtasks), counts.Total())
	return counts, nil
}

func newSubtaskBar(numTasks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(numTasks,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("subtasks"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
