package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/figure-systems/gofig/gofig"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"40", "88", "-n8"})
	require.NoError(t, err)
	require.Equal(t, 8, opts.nmax)
	require.Equal(t, []gofig.Config{{A: 4, B: 0}, {A: 8, B: 8}}, opts.configs)

	// repeated tokens collapse
	opts, err = parseArgs([]string{"44", "44", "-n5"})
	require.NoError(t, err)
	require.Len(t, opts.configs, 1)

	opts, err = parseArgs([]string{"40", "-n5", "--stat", "--alt"})
	require.NoError(t, err)
	require.True(t, opts.stats)
	require.True(t, opts.alt)

	_, err = parseArgs([]string{"40", "-n5", "--bogus"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unrecognized argument: --bogus")

	_, err = parseArgs([]string{"40", "-n5", "41"})
	require.Contains(t, err.Error(), "Unrecognized argument: 41")

	_, err = parseArgs([]string{"-n5"})
	require.Error(t, err)

	_, err = parseArgs([]string{"40"})
	require.Error(t, err)

	_, err = parseArgs([]string{"40", "-n0"})
	require.Error(t, err)
	_, err = parseArgs([]string{"40", "-n21"})
	require.Error(t, err)

	_, err = parseArgs([]string{"40", "-n5", "--mt", "--stat"})
	require.Error(t, err)
	_, err = parseArgs([]string{"40", "-n5", "--mt", "--alt"})
	require.Error(t, err)
}

func TestSectionName(t *testing.T) {
	opts := runOpts{nmax: 8}
	require.Equal(t, "n8_a4_b0", sectionName(gofig.Config{A: 4}, opts))
	opts.stats = true
	opts.alt = true
	require.Equal(t, "n8_a8_b4_stats_alt", sectionName(gofig.Config{A: 8, B: 4}, opts))
	opts = runOpts{nmax: 6, mt: true}
	require.Equal(t, "n6_a8_b8_mt", sectionName(gofig.Config{A: 8, B: 8}, opts))
}

func TestRunSection(t *testing.T) {
	var out bytes.Buffer
	opts := runOpts{nmax: 3}
	require.NoError(t, runSection(&out, gofig.Config{A: 4}, opts))

	report := out.String()
	require.True(t, strings.HasPrefix(report, "[n3_a4_b0]\n"))
	require.Contains(t, report, "count_1 = 1\n")
	require.Contains(t, report, "count_2 = 2\n")
	require.Contains(t, report, "count_3 = 6\n")
	require.Contains(t, report, "total_count = 9\n")
	require.Contains(t, report, "time_seconds = ")
	require.Contains(t, report, "state_bytesize = ")
	require.Contains(t, report, "millions_per_sec = ")
	require.NotContains(t, report, "stat_non_leaf")

	out.Reset()
	opts.stats = true
	require.NoError(t, runSection(&out, gofig.Config{A: 4, B: 4}, opts))
	report = out.String()
	require.True(t, strings.HasPrefix(report, "[n3_a4_b4_stats]\n"))
	require.Contains(t, report, "stat_non_leaf = ")
	require.Contains(t, report, "stat_leaf = ")
	require.Contains(t, report, "stat_rejected = ")
	require.Contains(t, report, "stat_rejected_pct = ")

	out.Reset()
	opts = runOpts{nmax: 5, mt: true}
	require.NoError(t, runSection(&out, gofig.Config{A: 8, B: 8}, opts))
	require.Contains(t, out.String(), "total_count = 773\n")
}
