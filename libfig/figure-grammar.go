package libfig

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/figure-systems/gofig/gofig"
)

// FigureExpr is the ASCII figure notation: rows from top to bottom, 'X' for
// a chosen cell, '.' for an empty one, '/' between rows.
type FigureExpr struct {
	Rows []*FigureRow `@@ ("/" @@)*`
}

type FigureRow struct {
	Cells []string `@Cell+`
}

var figureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Cell", Pattern: `[X.]`},
	{Name: "Sep", Pattern: `/`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var parseFigureExpr = participle.MustBuild[FigureExpr](participle.Lexer(figureLexer))

// InitFromString assigns X from a figure expression, translating it so its
// bottom-row leftmost cell lands on PosOrigin. Round-trips exactly with
// AppendExprTo for normalized expressions.
func (X *Figure) InitFromString(figExpr string) error {
	X.Init(nil)

	Xexpr, err := parseFigureExpr.ParseString("", figExpr)
	if err != nil {
		return errors.Wrap(err, "bad figure expression")
	}

	type cell struct{ x, y int }
	var cells []cell

	numRows := len(Xexpr.Rows)
	for r, row := range Xexpr.Rows {
		y := numRows - 1 - r
		for x, tok := range row.Cells {
			if tok != "X" {
				continue
			}
			if len(cells) == gofig.MaxFigureSize {
				return gofig.ErrSizeExceeded
			}
			cells = append(cells, cell{x, y})
		}
	}
	if len(cells) == 0 {
		return errors.Wrap(gofig.ErrBadFigureExpr, "no chosen cells")
	}

	// Anchor: the bottom row's leftmost chosen cell goes to PosOrigin.
	anchor := cells[0]
	for _, ci := range cells {
		if ci.y < anchor.y || (ci.y == anchor.y && ci.x < anchor.x) {
			anchor = ci
		}
	}

	const x0, y0 = int(PosOrigin) % Width, int(PosOrigin) / Width
	for i, ci := range cells {
		x := x0 + ci.x - anchor.x
		y := y0 + ci.y - anchor.y
		if x < 1 || x > Width-2 || y < 1 || y > Height-2 {
			return errors.Wrap(gofig.ErrBadFigureExpr, "figure does not fit the enumeration grid")
		}
		X.cells[i] = Pos(x + Width*y)
	}
	X.size = len(cells)
	return nil
}
