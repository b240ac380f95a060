// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/dgenchev/tabtour/internal/dataset"
)

// The distributions lesson compares highway fuel economy across
// drive trains, first as empirical CDFs drawn with a step layer,
// then as kernel density estimates drawn with line and area layers.
func distributions(ctx *Context) error {
	fuel := dataset.FuelEconomy()

	if err := ctx.Plot("hwy-ecdf", ecdfPlot(fuel)); err != nil {
		return err
	}
	if err := ctx.Plot("hwy-density", densityPlot(fuel)); err != nil {
		return err
	}
	return nil
}

func ecdfPlot(fuel table.Grouping) *gg.Plot {
	p := gg.NewPlot(fuel)
	p.Add(gg.Title("highway fuel economy by drive train"))
	p.Add(gg.AxisLabel("x", "highway miles per gallon"))

	p.GroupBy("drv")
	p.Stat(ggstat.ECDF{X: "hwy", Label: "cars"})
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "hwy", Y: "cumulative density of cars", Color: "drv"},
		Step:       gg.StepHV,
	})
	return p
}

func densityPlot(fuel table.Grouping) *gg.Plot {
	p := gg.NewPlot(fuel)
	p.Add(gg.Title("highway fuel economy density by drive train"))
	p.Add(gg.AxisLabel("x", "highway miles per gallon"))

	p.GroupBy("drv")
	p.Stat(ggstat.Density{X: "hwy"})
	p.Add(gg.LayerArea{X: "hwy", Upper: "probability density", Fill: "drv"})
	p.Add(gg.LayerLines{X: "hwy", Y: "probability density", Color: "drv"})
	return p
}
