// Package libfig enumerates discrete figures (polyominoes / lattice animals)
// on the integer grid, exactly once per translation class, under a
// parameterized pair of connectivities: A among chosen cells, B among
// background cells.
package libfig

import (
	"github.com/figure-systems/gofig/gofig"
)

// Generator walks the enumeration tree depth-first. The root is the
// single-cell figure at PosOrigin; a node's children are the candidates
// strictly after the node's own chosen index, in insertion order.
//
// Generator is a flat value: no pointers, fixed-size arrays only. Copying
// the struct snapshots the complete enumeration state, which is what the
// parallel driver relies on to fork subtasks.
type Generator struct {
	connA     uint8
	connB     uint8
	a8b8      bool
	withStats bool
	dirCount  uint32

	level uint32
	count uint32

	candidateCounts [gofig.MaxFigureSize]uint32
	chosenIndices   [gofig.MaxFigureSize]uint32
	candidates      [gofig.MaxCandidates]Pos

	gridCandidates BitGrid
	gridChosen     BitGrid

	dirs   [8]Pos
	lookup [256]bool

	visitGrid  BitGrid
	visitQueue [gofig.MaxCandidates + Width + 1]Pos

	Stats gofig.Stats
}

// Init resets gen to the root figure (the single chosen cell at PosOrigin).
// Positions 0..PosOrigin are pre-marked as candidates so they can never be
// appended again; this is the unicity convention.
func (gen *Generator) Init(cfg gofig.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	*gen = Generator{
		connA:     uint8(cfg.A),
		connB:     uint8(cfg.B),
		a8b8:      cfg.A == 8 && cfg.B == 8,
		withStats: cfg.WithStats,
	}
	if cfg.A == 4 {
		copy(gen.dirs[:], dirs4[:])
		gen.dirCount = 4
	} else {
		gen.dirs = dirs8
		gen.dirCount = 8
	}
	gen.initValidityLookup()

	gen.candidates[0] = PosOrigin
	gen.count = 1
	gen.candidateCounts[0] = 1
	for pos := Pos(0); pos <= PosOrigin; pos++ {
		gen.gridCandidates.Set(pos)
	}
	gen.chosenIndices[0] = 0
	if gen.connB != 0 {
		gen.gridChosen.Set(PosOrigin)
	}
	gen.level = 0
	return nil
}

// Config returns the connectivity pair gen was initialized with.
func (gen *Generator) Config() gofig.Config {
	return gofig.Config{
		A:         int(gen.connA),
		B:         int(gen.connB),
		WithStats: gen.withStats,
	}
}

// Level is the depth of the current figure: its size minus one.
func (gen *Generator) Level() int {
	return int(gen.level)
}

// FigureSize is the cell count of the current figure.
func (gen *Generator) FigureSize() int {
	return int(gen.level) + 1
}

// firstChild descends to the current figure's first child, appending the
// unseen neighbors of the current chosen cell as candidates. The new chosen
// cell is always the candidate immediately after the parent's chosen index;
// never an earlier one. That is what keeps the tree non-redundant.
func (gen *Generator) firstChild() bool {
	idx := gen.chosenIndices[gen.level]
	pos := gen.candidates[idx]

	for _, dir := range gen.dirs[:gen.dirCount] {
		next := pos + dir
		if !gen.gridCandidates.Get(next) {
			gen.gridCandidates.Set(next)
			gen.candidates[gen.count] = next
			gen.count++
		}
	}
	if idx+1 == gen.count {
		if gen.withStats {
			gen.Stats.Leaf++
		}
		return false
	}

	gen.level++
	gen.candidateCounts[gen.level] = gen.count
	gen.chosenIndices[gen.level] = idx + 1
	if gen.connB != 0 {
		gen.gridChosen.Set(gen.candidates[idx+1])
	}
	if gen.withStats {
		gen.Stats.NonLeaf++
	}
	return true
}

// nextSibling advances the chosen cell at the current level to the next
// candidate, if one exists.
func (gen *Generator) nextSibling() bool {
	idx := gen.chosenIndices[gen.level]
	if idx+1 < gen.count {
		if gen.connB != 0 {
			gen.gridChosen.Reset(gen.candidates[idx])
			gen.gridChosen.Set(gen.candidates[idx+1])
		}
		gen.chosenIndices[gen.level] = idx + 1
		return true
	}
	return false
}

// parent ascends one level, truncating the candidates appended below it.
func (gen *Generator) parent() {
	if gen.connB != 0 {
		gen.gridChosen.Reset(gen.candidates[gen.chosenIndices[gen.level]])
	}
	gen.level--
	for idx := gen.candidateCounts[gen.level]; idx < gen.count; idx++ {
		gen.gridCandidates.Reset(gen.candidates[idx])
	}
	gen.count = gen.candidateCounts[gen.level]
}

// Generate runs the callback driver: onFigure fires once per valid figure
// (internal tree nodes included) with the figure's level. nmax caps the
// figure size and is clamped to [1, MaxFigureSize].
func (gen *Generator) Generate(onFigure gofig.OnFigure, nmax int) {
	if nmax > gofig.MaxFigureSize {
		nmax = gofig.MaxFigureSize
	}
	if nmax < 1 {
		nmax = 1
	}
	maxLevel := uint32(nmax - 1)

	for {
		for gen.checkValidity() {
			onFigure(int(gen.level))
			if gen.level >= maxLevel {
				if gen.withStats {
					gen.Stats.NonLeaf++
				}
				break
			} else if !gen.firstChild() {
				break
			}
		}
		for !gen.nextSibling() {
			if gen.level == 0 {
				return
			}
			gen.parent()
		}
	}
}

// NextStep advances to the next valid figure, returning false once the
// enumeration is exhausted. Between calls the current figure is stable,
// which is what lets the parallel driver snapshot sub-states. A single call
// performs the work the callback driver does between two valid figures.
func (gen *Generator) NextStep(nmax int) bool {
	if nmax > gofig.MaxFigureSize {
		nmax = gofig.MaxFigureSize
	}
	if gen.level+1 < uint32(nmax) {
		if gen.firstChild() {
			if gen.checkValidity() {
				return true
			}
		}
	}
	for {
		for !gen.nextSibling() {
			if gen.level == 0 {
				return false
			}
			gen.parent()
		}
		if gen.checkValidity() {
			return true
		}
	}
}
