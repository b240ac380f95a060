// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// The reductions below collapse each group of a grouping to a single
// row. Keys names the columns carried through to the output row; they
// must be constant within each group, which is always the case after
// table.GroupBy on those columns. An empty group reduces to an empty
// table rather than inventing key values.

// Count reduces each group to its row count.
//
// The output column is named by Label, or "count" if Label is "".
type Count struct {
	Keys  []string
	Label string
}

// F implements the gg.Stat interface.
func (c Count) F(g table.Grouping) table.Grouping {
	label := c.Label
	if label == "" {
		label = "count"
	}
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			return keyRow(t, c.Keys).Add(label, []int{}).Done()
		}
		return keyRow(t, c.Keys).Add(label, []int{t.Len()}).Done()
	})
}

// Sum reduces each group to the totals of Cols, producing a
// "total <col>" column for each.
type Sum struct {
	Keys []string
	Cols []string
}

// F implements the gg.Stat interface.
func (s Sum) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		nt := keyRow(t, s.Keys)
		for _, col := range s.Cols {
			if t.Len() == 0 {
				nt.Add("total "+col, []float64{})
				continue
			}
			var xs []float64
			slice.Convert(&xs, t.MustColumn(col))
			nt.Add("total "+col, []float64{vec.Sum(xs)})
		}
		return nt.Done()
	})
}

// Quantile reduces each group to the Q quantile of Col, producing a
// column named like "p50 <col>". A zero Q is treated as 0.5.
type Quantile struct {
	Keys []string
	Col  string
	Q    float64
}

// F implements the gg.Stat interface.
func (q Quantile) F(g table.Grouping) table.Grouping {
	quant := q.Q
	if quant == 0 {
		quant = 0.5
	}
	label := fmt.Sprintf("p%g %s", 100*quant, q.Col)
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			return keyRow(t, q.Keys).Add(label, []float64{}).Done()
		}
		var xs []float64
		slice.Convert(&xs, t.MustColumn(q.Col))
		s := stats.Sample{Xs: xs}
		return keyRow(t, q.Keys).Add(label, []float64{s.Quantile(quant)}).Done()
	})
}

// keyRow starts a table holding the first value of each key column of
// t, or zero-length key columns if t is empty.
func keyRow(t *table.Table, keys []string) *table.Builder {
	nt := new(table.Builder)
	for _, k := range keys {
		col := reflect.ValueOf(t.MustColumn(k))
		if t.Len() == 0 {
			nt.Add(k, reflect.MakeSlice(col.Type(), 0, 0).Interface())
			continue
		}
		one := reflect.MakeSlice(col.Type(), 1, 1)
		one.Index(0).Set(col.Index(0))
		nt.Add(k, one.Interface())
	}
	return nt
}
