package libfig

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/figure-systems/gofig/gofig"
)

// Figure is a flat snapshot of an enumerated figure: its cells at their
// absolute grid positions, anchored at PosOrigin per the unicity convention.
type Figure struct {
	connA uint8
	size  int
	cells [gofig.MaxFigureSize]Pos
}

var figPool = sync.Pool{
	New: func() interface{} {
		return new(Figure)
	},
}

func NewFigure(Xsrc *Figure) *Figure {
	X := figPool.Get().(*Figure)
	X.Init(Xsrc)
	return X
}

func (X *Figure) Init(Xsrc *Figure) {
	if Xsrc == nil {
		X.connA = 4
		X.size = 0
		return
	}
	*X = *Xsrc
}

// CurrentFigure snapshots gen's current figure (pooled; Reclaim when done).
func (gen *Generator) CurrentFigure() *Figure {
	X := NewFigure(nil)
	X.connA = gen.connA
	X.size = int(gen.level) + 1
	for l := uint32(0); l <= gen.level; l++ {
		X.cells[l] = gen.candidates[gen.chosenIndices[l]]
	}
	return X
}

func (X *Figure) Size() int {
	return X.size
}

func (X *Figure) Points() []gofig.Point {
	const x0, y0 = int(PosOrigin) % Width, int(PosOrigin) / Width

	pts := make([]gofig.Point, X.size)
	for i, pos := range X.cells[:X.size] {
		pts[i] = gofig.Point{
			X: int(pos)%Width - x0,
			Y: int(pos)/Width - y0,
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// AppendExprTo appends the canonical ASCII expression: bounding-box rows
// from top to bottom, 'X' for chosen cells, '.' for empty ones, '/' between
// rows, e.g. "XX./.XX".
func (X *Figure) AppendExprTo(dst []byte) []byte {
	if X.size == 0 {
		return dst
	}

	var occupied BitGrid
	minX, minY := Width, Height
	maxX, maxY := 0, 0
	for _, pos := range X.cells[:X.size] {
		occupied.Set(pos)
		x, y := int(pos)%Width, int(pos)/Width
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for y := maxY; y >= minY; y-- {
		if y != maxY {
			dst = append(dst, '/')
		}
		for x := minX; x <= maxX; x++ {
			if occupied.Get(Pos(x + Width*y)) {
				dst = append(dst, 'X')
			} else {
				dst = append(dst, '.')
			}
		}
	}
	return dst
}

func (X *Figure) String() string {
	var scrap [256]byte
	return string(X.AppendExprTo(scrap[:0]))
}

func (X *Figure) WriteAsString(out io.Writer, opts gofig.PrintOpts) {
	var scrap [256]byte
	expr := X.AppendExprTo(scrap[:0])
	fmt.Fprintf(out, "n=%d,%q,", X.size, expr)

	if opts.Density {
		fmt.Fprintf(out, "%.4f,", X.Density())
	}
	if opts.Cells {
		b := strings.Builder{}
		for _, pt := range X.Points() {
			fmt.Fprintf(&b, "(%d %d)", pt.X, pt.Y)
		}
		fmt.Fprintf(out, "%q,", b.String())
	}
}

// Density is the directed-adjacency density under the figure's chosen-cell
// connectivity: every A-adjacent ordered pair counts once, so the result is
// edges / (n * (n-1)).
func (X *Figure) Density() float64 {
	if X.size < 2 {
		return 0
	}

	var occupied BitGrid
	for _, pos := range X.cells[:X.size] {
		occupied.Set(pos)
	}

	dirs := dirs8[:]
	if X.connA == 4 {
		dirs = dirs4[:]
	}
	edges := 0
	for _, pos := range X.cells[:X.size] {
		for _, dir := range dirs {
			if occupied.Get(pos + dir) {
				edges++
			}
		}
	}
	return float64(edges) / float64(X.size*(X.size-1))
}

func (X *Figure) MakeCopy() gofig.Figure {
	return NewFigure(X)
}

func (X *Figure) Reclaim() {
	if X != nil {
		figPool.Put(X)
	}
}
