// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
)

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

// sample has two groups under "k": "a" with three rows and "b" with
// five, both with odd counts so the median is a data point under any
// interpolation rule.
func sample() *table.Table {
	return new(table.Builder).
		Add("k", []string{"a", "a", "a", "b", "b", "b", "b", "b"}).
		Add("x", []int{4, 2, 6, 10, 6, 8, 2, 14}).
		Done()
}

func TestProject(t *testing.T) {
	tab := sample()
	got := Project(tab, "x")
	if want := []string{"x"}; !reflect.DeepEqual(got.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, got.Columns())
	}
	xs := got.Table(table.RootGroupID).MustColumn("x")
	if want := []int{4, 2, 6, 10, 6, 8, 2, 14}; !reflect.DeepEqual(xs, want) {
		t.Fatalf("x should be %v; got %v", want, xs)
	}

	// Projection reorders columns.
	got = Project(tab, "x", "k")
	if want := []string{"x", "k"}; !reflect.DeepEqual(got.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, got.Columns())
	}

	shouldPanic(t, "unknown column", func() {
		Project(tab, "missing")
	})
}

func TestSortDesc(t *testing.T) {
	g := SortDesc(table.GroupBy(sample(), "k"), "x")
	want := map[string][]int{
		"a": {6, 4, 2},
		"b": {14, 10, 8, 6, 2},
	}
	for _, gid := range g.Tables() {
		gt := g.Table(gid)
		k := gt.MustColumn("k").([]string)[0]
		if xs := gt.MustColumn("x"); !reflect.DeepEqual(xs, want[k]) {
			t.Errorf("group %q should be %v; got %v", k, want[k], xs)
		}
	}
}

func TestHead(t *testing.T) {
	g := Head(table.GroupBy(sample(), "k"), 2)
	for _, gid := range g.Tables() {
		if n := g.Table(gid).Len(); n != 2 {
			t.Errorf("group %v should have 2 rows; got %d", gid, n)
		}
	}

	// Short groups are returned whole.
	g = Head(sample(), 100)
	if n := g.Table(table.RootGroupID).Len(); n != 8 {
		t.Errorf("want 8 rows; got %d", n)
	}
}

func TestCount(t *testing.T) {
	g := Count{Keys: []string{"k"}}.F(table.GroupBy(sample(), "k"))
	flat := table.Flatten(g)
	if want := []string{"k", "count"}; !reflect.DeepEqual(flat.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, flat.Columns())
	}
	got := map[string]int{}
	ks := flat.MustColumn("k").([]string)
	for i, n := range flat.MustColumn("count").([]int) {
		got[ks[i]] = n
	}
	if want := map[string]int{"a": 3, "b": 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("counts should be %v; got %v", want, got)
	}
}

func TestSum(t *testing.T) {
	g := Sum{Keys: []string{"k"}, Cols: []string{"x"}}.F(table.GroupBy(sample(), "k"))
	flat := table.Flatten(g)
	got := map[string]float64{}
	ks := flat.MustColumn("k").([]string)
	for i, x := range flat.MustColumn("total x").([]float64) {
		got[ks[i]] = x
	}
	if want := map[string]float64{"a": 12, "b": 40}; !reflect.DeepEqual(got, want) {
		t.Fatalf("totals should be %v; got %v", want, got)
	}
}

func TestQuantile(t *testing.T) {
	g := Quantile{Keys: []string{"k"}, Col: "x"}.F(table.GroupBy(sample(), "k"))
	flat := table.Flatten(g)
	if want := []string{"k", "p50 x"}; !reflect.DeepEqual(flat.Columns(), want) {
		t.Fatalf("columns should be %v; got %v", want, flat.Columns())
	}
	got := map[string]float64{}
	ks := flat.MustColumn("k").([]string)
	for i, x := range flat.MustColumn("p50 x").([]float64) {
		got[ks[i]] = x
	}
	if want := map[string]float64{"a": 4, "b": 8}; !reflect.DeepEqual(got, want) {
		t.Fatalf("medians should be %v; got %v", want, got)
	}
}

func ExampleSum() {
	tab := new(table.Builder).
		Add("k", []string{"a", "a", "b"}).
		Add("x", []int{1, 2, 5}).
		Done()
	g := Sum{Keys: []string{"k"}, Cols: []string{"x"}}.F(table.GroupBy(tab, "k"))
	table.Fprint(os.Stdout, table.Flatten(g))
	// Output:
	// k  total x
	// a        3
	// b        5
}

func TestEmptyGroup(t *testing.T) {
	empty := new(table.Builder).Add("k", []string{}).Add("x", []int{}).Done()
	for _, stat := range []interface {
		F(table.Grouping) table.Grouping
	}{
		Count{Keys: []string{"k"}},
		Sum{Keys: []string{"k"}, Cols: []string{"x"}},
		Quantile{Keys: []string{"k"}, Col: "x"},
	} {
		g := stat.F(empty)
		if n := g.Table(table.RootGroupID).Len(); n != 0 {
			t.Errorf("%T of empty table should have 0 rows; got %d", stat, n)
		}
	}
}
