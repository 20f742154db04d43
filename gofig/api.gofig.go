// Package gofig is the public surface of the discrete-figure enumerator:
// configuration, per-size counts, figure snapshots, and figure streams.
//
// The enumeration core lives in libfig; this package carries only the types
// that travel across it.
package gofig

import (
	"io"
)

const (

	// MaxFigureSize is the build-time cap on figure size (cell count).
	// Enumerating larger figures requires a rebuild with a bigger constant.
	MaxFigureSize = 20

	// MaxCandidates bounds the candidate sequence of a generator state:
	// a figure of size n never offers more than 5n candidate cells.
	MaxCandidates = 5 * MaxFigureSize
)

// Config selects a connectivity pair and enumeration options.
//
// A is the connectivity required among chosen cells (4 or 8).
// B is the connectivity required among background cells (4 or 8, or 0 to
// disable the background constraint).
type Config struct {
	A         int
	B         int
	WithStats bool // tally leaf / non-leaf / rejected figures (slower)
}

func (cfg Config) Validate() error {
	if cfg.A != 4 && cfg.A != 8 {
		return ErrBadConnectivity
	}
	if cfg.B != 0 && cfg.B != 4 && cfg.B != 8 {
		return ErrBadConnectivity
	}
	return nil
}

// Label returns the two-digit connectivity token, e.g. "84" for A=8, B=4.
func (cfg Config) Label() string {
	return string([]byte{'0' + byte(cfg.A), '0' + byte(cfg.B)})
}

// Stats tallies what became of each figure the state machine produced.
// The three counters are mutually exclusive.
type Stats struct {
	NonLeaf  uint64 // valid figures with at least one child
	Leaf     uint64 // valid figures with no child
	Rejected uint64 // figures discarded by the validity oracle
}

// Counts holds per-size figure counts: Counts[i] is the number of canonical
// figures of size i+1.
type Counts []uint64

func (counts Counts) Total() uint64 {
	total := uint64(0)
	for _, n := range counts {
		total += n
	}
	return total
}

// IsEqual compares count prefixes; the shorter length wins, so an empty
// Counts is equal to all others.
func (counts Counts) IsEqual(target Counts) bool {
	N := len(counts)
	if len(target) < N {
		N = len(target)
	}
	for i := 0; i < N; i++ {
		if counts[i] != target[i] {
			return false
		}
	}
	return true
}

// Point is a cell of a figure, translated so the figure's bottom-row
// leftmost cell sits at (0, 0). Cells on higher rows may have negative X.
type Point struct {
	X, Y int
}

// OnFigure observes each valid figure the driver visits.
// level is the figure's depth in the enumeration tree: size minus one.
type OnFigure func(level int)

// Figure is a read-only snapshot of an enumerated figure.
type Figure interface {

	// Size returns the number of cells.
	Size() int

	// Points returns the normalized cells, sorted by (Y, X).
	Points() []Point

	// AppendExprTo appends the canonical ASCII expression of this figure:
	// rows top to bottom, 'X' chosen, '.' empty, '/' between rows.
	AppendExprTo(dst []byte) []byte

	WriteAsString(out io.Writer, opts PrintOpts)

	// Density is the directed-adjacency density under the figure's chosen-cell
	// connectivity: edges / (n * (n-1)). Zero for figures smaller than 2.
	Density() float64

	// Returns a new copy of this instance.
	MakeCopy() Figure

	// Recycles this Figure instance into a pool for reuse.
	// Caller asserts that no more references to this instance will persist.
	Reclaim()
}

// FigureAdder is an add-if-absent sink for figures.
type FigureAdder interface {

	// Tries to add the given figure to this set.
	// If true is returned, X did not exist and was added.
	TryAddFigure(X Figure) bool
}

// PrintOpts specifies what is printed when printing a figure
type PrintOpts struct {
	Label   string // Prefix label
	Cells   bool   // If set, prints the normalized cell list
	Density bool   // If set, prints the adjacency density
}

// KnownCounts4 and KnownCounts8 are the published per-size counts of fixed
// figures, i.e. counted up to translation only (OEIS A001168 for
// 4-connectivity, A001671 for 8-connectivity), used by the report
// cross-check and the test suite.
// Background connectivity is not reflected here: they match B = 0 runs only.
var (
	KnownCounts4 = Counts{
		1, 2, 6, 19, 63, 216, 760, 2725, 9910, 36446,
		135268, 505861, 1903890, 7204874, 27394666, 104592937,
		400795844, 1540820542, 5940738676, 22964779660,
	}
	KnownCounts8 = Counts{
		1, 4, 20, 110, 638, 3832, 23592, 147941, 940982, 6053180,
		39299408, 257105146, 1692931066, 11208974860, 74570549714,
		498174818986, 3340366308393,
	}
)

// KnownCounts returns the reference table matching cfg's chosen-cell
// connectivity, or nil when no reference applies (non-zero B).
func KnownCounts(cfg Config) Counts {
	if cfg.B != 0 {
		return nil
	}
	if cfg.A == 8 {
		return KnownCounts8
	}
	return KnownCounts4
}
