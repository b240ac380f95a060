// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/dgenchev/tabtour/internal/dataset"
	"github.com/dgenchev/tabtour/internal/query"
)

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// The reshape lesson moves data between long and wide layouts with
// Unpivot and Pivot, attaches a lookup table with Join, stacks
// filtered tables with Concat, and finishes with a tile heatmap of
// the long-form weather data.
func reshape(ctx *Context) error {
	weather := dataset.Weather()

	wide := monthlyWide(weather)
	ctx.Table("mean temperature, one column per month", wide)
	ctx.Table("and back to one row per observation", monthlyLong(wide))
	ctx.Table("flights with airline names", withAirlineNames(dataset.Flights()))
	ctx.Table("first and last sampled day, stacked", bookendDays(dataset.Flights()))

	return ctx.Plot("temp-heatmap", heatmap(weather))
}

// withMonthNames derives a "month name" column from the month number.
func withMonthNames(weather table.Grouping) table.Grouping {
	return table.MapCols(weather, func(month []int, name []string) {
		for i, m := range month {
			name[i] = monthNames[m-1]
		}
	}, "month")("month name")
}

// monthlyWide pivots temperature into one column per month, one row
// per city.
func monthlyWide(weather table.Grouping) table.Grouping {
	named := withMonthNames(weather)
	named = query.Project(named, "city", "month name", "temp")
	return table.Pivot(named, "month name", "temp")
}

// monthlyLong undoes monthlyWide.
func monthlyLong(wide table.Grouping) table.Grouping {
	return table.Unpivot(wide, "month name", "temp", monthNames...)
}

func withAirlineNames(flights table.Grouping) table.Grouping {
	joined := table.Join(flights, "carrier", dataset.Airlines(), "carrier")
	return query.Project(joined, "carrier", "name", "flight", "origin", "dest")
}

// bookendDays stacks the first and last sampled day into one table,
// renaming and dropping columns along the way.
func bookendDays(flights table.Grouping) table.Grouping {
	first := table.FilterEq(flights, "day", 1)
	last := table.FilterEq(flights, "day", 3)
	both := table.Concat(first, last)
	both = table.Rename(both, "dep delay", "departure delay")
	return table.Remove(both, "air time")
}

// heatmap draws monthly mean temperature as a month-by-city grid,
// with temperature mapped to the fill color.
func heatmap(weather table.Grouping) *gg.Plot {
	p := gg.NewPlot(weather)
	p.Add(gg.Title("mean temperature by month"))
	p.Add(gg.AxisLabel("x", "month"))
	p.Add(gg.LayerTiles{X: "month", Y: "city", Fill: "temp"})
	return p
}
