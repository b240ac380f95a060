// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"golang.org/x/image/colornames"

	"github.com/dgenchev/tabtour/internal/dataset"
)

// The visualize lesson builds up scatter plots of the fuel economy
// dataset one grammar element at a time: a point layer with an
// aesthetic mapping, a statistical transform feeding a line layer,
// and a facet layout.
func visualize(ctx *Context) error {
	fuel := dataset.FuelEconomy()

	if err := ctx.Plot("displ-hwy", scatterPlot(fuel)); err != nil {
		return err
	}
	if err := ctx.Plot("displ-hwy-by-class", classFacets(fuel)); err != nil {
		return err
	}
	return nil
}

// scatterPlot maps engine displacement to x, highway economy to y,
// and vehicle class to point color, then overlays a LOESS smooth of
// the whole dataset. The smooth keeps the default stroke: the color
// scale is already trained on the class names, and a constant color
// cannot share it.
func scatterPlot(fuel table.Grouping) *gg.Plot {
	p := gg.NewPlot(fuel)
	p.Add(gg.Title("highway fuel economy vs. engine displacement"))
	p.Add(gg.AxisLabel("x", "engine displacement (litres)"))
	p.Add(gg.AxisLabel("y", "highway miles per gallon"))
	p.SetScale("y", gg.NewLinearScaler().Include(0))

	p.Add(gg.LayerPoints{X: "displ", Y: "hwy", Color: "class"})

	p.Stat(ggstat.LOESS{X: "displ", Y: "hwy"})
	p.Add(gg.LayerLines{X: "displ", Y: "hwy"})
	return p
}

// classFacets draws the same scatter, one subplot per vehicle class,
// with a per-class least squares trend line.
func classFacets(fuel table.Grouping) *gg.Plot {
	p := gg.NewPlot(fuel)
	p.Add(gg.Title("highway fuel economy by vehicle class"))
	p.Add(gg.FacetWrap{Col: "class"})

	p.Add(gg.LayerPoints{X: "displ", Y: "hwy"})

	p.Stat(ggstat.LeastSquares{X: "displ", Y: "hwy"})
	p.Add(gg.LayerLines{X: "displ", Y: "hwy", Color: p.Const(colornames.Tomato)})
	return p
}
