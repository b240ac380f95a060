// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/dgenchev/tabtour/internal/dataset"
	"github.com/dgenchev/tabtour/internal/query"
)

// The summarize lesson groups the flights dataset and collapses each
// group to summary rows: means with ggstat.Agg, counts, totals, and
// medians with the query reductions.
func summarize(ctx *Context) error {
	flights := dataset.Flights()

	ctx.Table("flights grouped by day", table.GroupBy(flights, "day"))
	ctx.Table("mean departure delay per day", dailyDelay(flights))
	ctx.Table("flights per carrier", carrierCounts(flights))
	ctx.Table("distance flown per origin airport", originDistance(flights))
	ctx.Table("median departure delay per day", medianDailyDelay(flights))
	ctx.Table("arrival delay per carrier", carrierDelay(flights))
	ctx.Table("typical ground speed per carrier", carrierSpeed(flights))
	return nil
}

// dailyDelay averages departure delay over the three date key
// columns, one output row per distinct (year, month, day).
func dailyDelay(flights table.Grouping) table.Grouping {
	return ggstat.Agg("year", "month", "day")(ggstat.AggMean("dep delay")).F(flights)
}

func carrierCounts(flights table.Grouping) table.Grouping {
	byCarrier := table.GroupBy(flights, "carrier")
	return table.Flatten(query.Count{Keys: []string{"carrier"}}.F(byCarrier))
}

func originDistance(flights table.Grouping) table.Grouping {
	byOrigin := table.GroupBy(flights, "origin")
	return table.Flatten(query.Sum{Keys: []string{"origin"}, Cols: []string{"distance"}}.F(byOrigin))
}

func medianDailyDelay(flights table.Grouping) table.Grouping {
	byDay := table.GroupBy(flights, "year", "month", "day")
	q := query.Quantile{Keys: []string{"year", "month", "day"}, Col: "dep delay"}
	return table.Flatten(q.F(byDay))
}

func carrierDelay(flights table.Grouping) table.Grouping {
	agg := ggstat.Agg("carrier")(
		ggstat.AggMean("arr delay"),
		ggstat.AggMin("arr delay"),
		ggstat.AggMax("arr delay"))
	return agg.F(flights)
}

// carrierSpeed derives per-flight ground speed and reduces it to a
// geometric mean per carrier.
func carrierSpeed(flights table.Grouping) table.Grouping {
	withSpeed := withGainAndSpeed(flights)
	return ggstat.Agg("carrier")(ggstat.AggGeoMean("speed")).F(withSpeed)
}
