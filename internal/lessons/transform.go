// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"github.com/aclements/go-gg/table"

	"github.com/dgenchev/tabtour/internal/dataset"
	"github.com/dgenchev/tabtour/internal/query"
)

// The transform lesson walks through the single-table verbs on the
// flights dataset: pick rows, order rows, pick columns, and derive
// new columns. Each step starts from the untouched dataset.
func transform(ctx *Context) error {
	flights := dataset.Flights()

	ctx.Table("flights on the first of the month", firstOfMonth(flights))
	ctx.Table("departures more than ten minutes late", lateDepartures(flights))
	ctx.Table("worst departure delays first", byWorstDelay(flights))
	ctx.Table("just the schedule columns", schedule(flights))
	ctx.Table("time made up in the air, and ground speed", withGainAndSpeed(flights))
	return nil
}

func firstOfMonth(flights table.Grouping) table.Grouping {
	return table.FilterEq(flights, "day", 1)
}

func lateDepartures(flights table.Grouping) table.Grouping {
	return table.Filter(flights, func(delay int) bool { return delay > 10 }, "dep delay")
}

func byWorstDelay(flights table.Grouping) table.Grouping {
	return query.SortDesc(flights, "dep delay")
}

func schedule(flights table.Grouping) table.Grouping {
	return query.Project(flights, "year", "month", "day", "carrier", "flight", "origin", "dest")
}

// withGainAndSpeed derives two columns: "gain", the minutes a flight
// made up in the air, and "speed", its average ground speed in miles
// per hour.
func withGainAndSpeed(flights table.Grouping) table.Grouping {
	flights = table.MapCols(flights, func(dep, arr []int, gain []int) {
		for i := range dep {
			gain[i] = dep[i] - arr[i]
		}
	}, "dep delay", "arr delay")("gain")

	return table.MapCols(flights, func(dist, airtime []int, speed []float64) {
		for i := range dist {
			speed[i] = float64(dist[i]) / float64(airtime[i]) * 60
		}
	}, "distance", "air time")("speed")
}
