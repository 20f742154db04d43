package libfig

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/go-python/gpython/py"

	"github.com/figure-systems/gofig/gofig"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	PyFigureType       = py.NewType("Figure", "a discrete figure: a connected set of grid cells")
	PyFigureStreamType = py.NewType("FigureStream", "gofig.FigureStream")
)

func (X *Figure) Type() *py.Type {
	return PyFigureType
}

func (X *Figure) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	X.WriteAsString(&writer, gofig.PrintOpts{})
	return py.String(writer.String()), nil
}

func (X *Figure) M__repr__() (py.Object, error) {
	return X.M__str__()
}

// pyStream adapts a gofig.FigureStream for gpython.
type pyStream struct {
	*gofig.FigureStream
}

func (stream *pyStream) Type() *py.Type {
	return PyFigureStreamType
}

func loadConfigArgs(args py.Tuple) (gofig.Config, int, error) {
	var aObj, bObj, nObj py.Object
	err := py.ParseTuple(args, "iii", &aObj, &bObj, &nObj)
	if err != nil {
		return gofig.Config{}, 0, err
	}
	cfg := gofig.Config{
		A: int(aObj.(py.Int)),
		B: int(bObj.(py.Int)),
	}
	return cfg, int(nObj.(py.Int)), nil
}

func countsToTuple(counts gofig.Counts) py.Tuple {
	out := make(py.Tuple, len(counts))
	for i, n := range counts {
		out[i] = py.Int(n)
	}
	return out
}

// Arg 1 (int): chosen-cell connectivity (4 or 8)
// Arg 2 (int): background connectivity (0, 4 or 8)
// Arg 3 (int): max figure size
func ph_Enumerate(module py.Object, args py.Tuple) (py.Object, error) {
	cfg, nmax, err := loadConfigArgs(args)
	if err != nil {
		return nil, err
	}
	counts, _, err := Enumerate(cfg, nmax)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(countsToTuple(counts)), nil
}

func ph_EnumerateMT(module py.Object, args py.Tuple) (py.Object, error) {
	cfg, nmax, err := loadConfigArgs(args)
	if err != nil {
		return nil, err
	}
	counts, err := EnumerateParallel(cfg, nmax, ParallelOpts{})
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(countsToTuple(counts)), nil
}

func ph_Figures(module py.Object, args py.Tuple) (py.Object, error) {
	cfg, nmax, err := loadConfigArgs(args)
	if err != nil {
		return nil, err
	}
	stream, err := StreamFigures(cfg, nmax)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(&pyStream{stream}), nil
}

// Arg 1 (str): figure expression, e.g. "XX./.XX"
func ph_NewFigure(module py.Object, args py.Tuple) (py.Object, error) {
	var figExpr string
	err := py.LoadTuple(args, []interface{}{&figExpr})
	if err != nil {
		return nil, err
	}
	X := NewFigure(nil)
	if err := X.InitFromString(figExpr); err != nil {
		X.Reclaim()
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(X), nil
}

func ph_Figure_Size(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(*Figure)
	return py.Object(py.Int(X.Size())), nil
}

func ph_Figure_Density(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(*Figure)
	return py.Object(py.Float(X.Density())), nil
}

func ph_Figure_Stream(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(*Figure)
	next := gofig.StreamFigure(X)
	return py.Object(&pyStream{next}), nil
}

func ph_FigureStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(*pyStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	if echo.to == nil {
		return echo.stdout.Write(buf)
	}
	return echo.to.Write(buf)
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

var gOutCount = int32(0)

func ph_FigureStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(*pyStream)
	var pathname string

	opts := gofig.PrintOpts{}

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}

	atomic.AddInt32(&gOutCount, 1)
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", gOutCount)
	}

	py.LoadAttr(kwargs, "cells", &opts.Cells)
	py.LoadAttr(kwargs, "density", &opts.Density)
	py.LoadAttr(kwargs, "file", &pathname)

	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.FigureStream.Print(writer, opts)
	return py.Object(&pyStream{next}), nil
}

func ph_FigureStream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(*pyStream)
	set := NewCanonicSet()
	next := stream.AddTo(set)

	// The set lives exactly as long as the stage it backs.
	chained := gofig.NewFigureStream()
	go func() {
		for X := range next.Outlet {
			chained.Outlet <- X
		}
		set.Close()
		chained.Close()
	}()
	return py.Object(&pyStream{chained}), nil
}

func init() {

	/////////////////////////////////
	// Figure
	{
		PyFigureType.Dict["Size"] = py.MustNewMethod("Size", ph_Figure_Size, 0, "")
		PyFigureType.Dict["Density"] = py.MustNewMethod("Density", ph_Figure_Density, 0, "")
		PyFigureType.Dict["Stream"] = py.MustNewMethod("Stream", ph_Figure_Stream, 0, "")
	}

	/////////////////////////////////
	// FigureStream
	{
		PyFigureStreamType.Dict["Go"] = py.MustNewMethod("Go", ph_FigureStream_Go, 0, "counts the number of figures output from the FigureStream")
		PyFigureStreamType.Dict["Print"] = py.MustNewMethod("Print", ph_FigureStream_Print, 0, "prints each figure from the FigureStream")
		PyFigureStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", ph_FigureStream_DropDupes, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewFigure", ph_NewFigure, 0, "builds a Figure from an expression like \"XX./.XX\""),
			py.MustNewMethod("Enumerate", ph_Enumerate, 0, "returns per-size counts for (a, b) up to nmax"),
			py.MustNewMethod("EnumerateMT", ph_EnumerateMT, 0, "parallel variant of Enumerate"),
			py.MustNewMethod("Figures", ph_Figures, 0, "streams every figure for (a, b) up to nmax"),
		}

		globals := py.StringDict{
			"LIB_VERSION":     py.String(LIB_VERSION),
			"MAX_FIGURE_SIZE": py.Int(gofig.MaxFigureSize),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pyfig",
				Doc:  "discrete figure enumeration gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
