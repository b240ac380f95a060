// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query provides small helpers for grouped tables that sit
// between the table package's verbs and the ggstat aggregators:
// column projection, descending sort, row limits, and a few per-group
// reductions. Everything here operates on a table.Grouping and
// returns a new one; inputs are never modified.
package query

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Project returns g with only the named columns, in the given order.
// It panics if a named column does not exist.
func Project(g table.Grouping, cols ...string) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var nt table.Builder
		for _, col := range cols {
			nt.Add(col, t.MustColumn(col))
		}
		return nt.Done()
	})
}

// SortDesc sorts each group of g into descending order of col.
func SortDesc(g table.Grouping, col string) table.Grouping {
	return table.MapTables(table.SortBy(g, col), reverseTable)
}

func reverseTable(_ table.GroupID, t *table.Table) *table.Table {
	idxs := make([]int, t.Len())
	for i := range idxs {
		idxs[i] = len(idxs) - 1 - i
	}
	var nt table.Builder
	for _, col := range t.Columns() {
		nt.Add(col, slice.Select(t.Column(col), idxs))
	}
	return nt.Done()
}

// Head returns the first n rows of each group of g. Groups with fewer
// than n rows are returned whole.
func Head(g table.Grouping, n int) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() <= n {
			return t
		}
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		var nt table.Builder
		for _, col := range t.Columns() {
			nt.Add(col, slice.Select(t.Column(col), idxs))
		}
		return nt.Done()
	})
}
