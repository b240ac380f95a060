// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lessons holds the guided tour itself. Each lesson is a
// sequence of independent, self-contained steps: load a sample
// dataset, apply one declarative transformation or one plot
// specification, and show the result. Steps never modify their
// inputs; every transformation yields a new grouping.
package lessons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// A Lesson is a named, ordered sequence of example transformations
// and plots.
type Lesson struct {
	Name  string
	Title string
	Run   func(*Context) error
}

// All lists every lesson in tour order.
var All = []Lesson{
	{"transform", "filtering, sorting, projecting, and deriving columns", transform},
	{"summarize", "grouping and per-group aggregation", summarize},
	{"visualize", "scatter plots, trend lines, and facets", visualize},
	{"distributions", "cumulative distributions and density estimates", distributions},
	{"reshape", "pivoting, joining, and a heatmap", reshape},
}

// Find returns the lesson with the given name.
func Find(name string) (Lesson, bool) {
	for _, l := range All {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

// Context carries the output sinks a lesson writes to.
type Context struct {
	// Tables receives printed tables. If nil, tables go to
	// standard output.
	Tables io.Writer

	// PlotDir is the directory rendered SVGs are written to. If
	// it is "", plots are still rendered, but discarded.
	PlotDir string

	// PlotWidth and PlotHeight give the plot size in pixels. Zero
	// values default to 800x500.
	PlotWidth, PlotHeight int

	// Plots accumulates the paths of the SVG files written so far.
	Plots []string
}

func (c *Context) out() io.Writer {
	if c.Tables == nil {
		return os.Stdout
	}
	return c.Tables
}

// Table prints g under a caption.
func (c *Context) Table(caption string, g table.Grouping) {
	w := c.out()
	fmt.Fprintf(w, "-- %s\n", caption)
	table.Fprint(w, g)
	fmt.Fprintln(w)
}

// Plot renders p as an SVG named name in the plot directory.
func (c *Context) Plot(name string, p *gg.Plot) error {
	w, h := c.PlotWidth, c.PlotHeight
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 500
	}

	if c.PlotDir == "" {
		return p.WriteSVG(io.Discard, w, h)
	}

	path := filepath.Join(c.PlotDir, name+".svg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteSVG(f, w, h); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.Plots = append(c.Plots, path)
	return nil
}
