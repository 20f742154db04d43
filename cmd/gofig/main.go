package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/plan-systems/klog"

	"github.com/figure-systems/gofig/gofig"
)

type runOpts struct {
	nmax     int
	stats    bool
	alt      bool
	mt       bool
	progress bool
	configs  []gofig.Config
}

var connTokens = map[string]gofig.Config{
	"40": {A: 4, B: 0},
	"44": {A: 4, B: 4},
	"48": {A: 4, B: 8},
	"80": {A: 8, B: 0},
	"84": {A: 8, B: 4},
	"88": {A: 8, B: 8},
}

func parseArgs(args []string) (runOpts, error) {
	opts := runOpts{}
	seen := hashset.New()

	for _, arg := range args {
		switch {
		case arg == "--stat":
			opts.stats = true
		case arg == "--alt":
			opts.alt = true
		case arg == "--mt":
			opts.mt = true
		case arg == "--progress":
			opts.progress = true
		case strings.HasPrefix(arg, "-n"):
			k, err := strconv.Atoi(arg[2:])
			if err != nil || k < 1 || k > gofig.MaxFigureSize {
				return opts, fmt.Errorf("-n wants a figure size between 1 and %d", gofig.MaxFigureSize)
			}
			opts.nmax = k
		default:
			cfg, ok := connTokens[arg]
			if !ok {
				return opts, fmt.Errorf("Unrecognized argument: %s", arg)
			}
			if seen.Contains(arg) {
				continue
			}
			seen.Add(arg)
			opts.configs = append(opts.configs, cfg)
		}
	}

	if len(opts.configs) == 0 {
		return opts, fmt.Errorf("at least one connectivity token is required (40, 44, 48, 80, 84, 88)")
	}
	if opts.nmax == 0 {
		return opts, fmt.Errorf("-n<size> is required")
	}
	if opts.mt && (opts.stats || opts.alt) {
		return opts, fmt.Errorf("--mt is incompatible with --stat and --alt")
	}
	return opts, nil
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		klog.Flush()
		os.Exit(1)
	}

	for _, cfg := range opts.configs {
		if err := runSection(os.Stdout, cfg, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			klog.Flush()
			os.Exit(1)
		}
	}

	klog.Flush()
}
