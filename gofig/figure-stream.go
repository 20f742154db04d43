package gofig

import (
	"fmt"
	"io"
	"strings"
)

// FigureStream pipes enumerated figures between processing stages.
// Ownership of a Figure travels through the channel.
type FigureStream struct {
	Outlet chan Figure
}

func NewFigureStream() *FigureStream {
	stream := &FigureStream{
		Outlet: make(chan Figure, 1),
	}
	return stream
}

func StreamFigure(X Figure) *FigureStream {
	next := NewFigureStream()

	go func() {
		next.Outlet <- X.MakeCopy()
		next.Close()
	}()

	return next
}

func (stream *FigureStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *FigureStream) PushFigure(X Figure) {
	stream.Outlet <- X.MakeCopy()
}

func (stream *FigureStream) PullFigure() Figure {
	X := <-stream.Outlet
	return X
}

// PullAll drains the stream, returning the number of figures pulled.
func (stream *FigureStream) PullAll() int {
	count := int(0)
	for X := range stream.Outlet {
		count++
		X.Reclaim()
	}
	return count
}

// Print writes each passing figure to out and forwards it downstream.
func (stream *FigureStream) Print(
	out io.WriteCloser,
	opts PrintOpts) *FigureStream {

	next := &FigureStream{
		Outlet: make(chan Figure, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for X := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
			}
			buf.WriteByte(',')

			count++
			fmt.Fprintf(&buf, "%06d,", count)
			X.WriteAsString(&buf, opts)
			buf.WriteByte('\n')
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- X
		}
		out.Close()
		next.Close()
	}()

	return next
}

// AddTo forwards only figures newly added to target, reclaiming the rest.
func (stream *FigureStream) AddTo(target FigureAdder) *FigureStream {
	next := &FigureStream{
		Outlet: make(chan Figure, 1),
	}

	go func() {
		for X := range stream.Outlet {
			wasAdded := target.TryAddFigure(X)
			if wasAdded {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}
