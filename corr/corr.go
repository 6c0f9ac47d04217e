// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corr computes pairwise Pearson correlations over tabular
// data.
//
// Matrix produces one Record per unordered pair of numeric columns,
// including self pairs. Symmetrize mirrors the records so a pair can
// be looked up with either variable on either axis, and Filter
// restricts the symmetric set to requested variable combinations.
package corr

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// A Record is the Pearson correlation of one directed variable pair.
type Record struct {
	// Var and WithVar name the correlated columns. Matrix emits
	// each unordered pair in one direction only; Symmetrize adds
	// the mirror.
	Var     string
	WithVar string

	// R is the Pearson correlation coefficient, in [-1, 1].
	R float64

	// P is the two-tailed significance of R under a t
	// distribution with N-2 degrees of freedom.
	P float64

	// N is the number of complete observations for the pair.
	N int
}

// Matrix computes the Pearson correlation and two-tailed p-value for
// every unordered pair of numeric columns in tab, including each
// column paired with itself. Observations with a missing (NaN) value
// in either column are dropped pairwise. Pairs with fewer than three
// complete observations or with an undefined correlation (for
// example, a constant column) produce no Record.
func Matrix(tab *table.Table) []Record {
	names, cols := numericColumns(tab)
	var recs []Record
	for i, a := range cols {
		for j := i; j < len(cols); j++ {
			r, p, n, ok := pearson(a, cols[j])
			if !ok {
				continue
			}
			if i == j {
				// A column correlates perfectly with
				// itself; pearson is still consulted
				// so degenerate columns are skipped.
				r, p = 1, 0
			}
			recs = append(recs, Record{names[i], names[j], r, p, n})
		}
	}
	return recs
}

// NumericColumns returns the names of tab's numeric columns in
// column order.
func NumericColumns(tab *table.Table) []string {
	names, _ := numericColumns(tab)
	return names
}

func numericColumns(tab *table.Table) ([]string, [][]float64) {
	var names []string
	var cols [][]float64
	for _, name := range tab.Columns() {
		switch col := tab.Column(name).(type) {
		case []float64:
			names = append(names, name)
			cols = append(cols, col)
		case []int:
			var fcol []float64
			slice.Convert(&fcol, col)
			names = append(names, name)
			cols = append(cols, fcol)
		}
	}
	return names, cols
}

// pearson computes the correlation of the complete cases of x and y.
func pearson(x, y []float64) (r, p float64, n int, ok bool) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	n = len(xs)
	if n < 3 {
		return 0, 0, n, false
	}
	r = stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, 0, n, false
	}
	// Guard against rounding outside [-1, 1].
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, pValue(r, n), n, true
}

// pValue returns the two-tailed p-value for a Pearson coefficient r
// over n observations.
func pValue(r float64, n int) float64 {
	if r == 1 || r == -1 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	dist := stats.TDist{V: float64(n - 2)}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}

// Symmetrize returns recs plus a mirrored record (WithVar, Var, R, P,
// N) for every input record. Self pairs are not mirrored, since the
// mirror would be an exact duplicate.
func Symmetrize(recs []Record) []Record {
	out := make([]Record, 0, 2*len(recs))
	out = append(out, recs...)
	for _, r := range recs {
		if r.Var == r.WithVar {
			continue
		}
		r.Var, r.WithVar = r.WithVar, r.Var
		out = append(out, r)
	}
	return out
}

// Filter returns the records of recs whose Var is in vars and whose
// WithVar is in withVars, preserving order. Names that match no
// record simply select nothing.
func Filter(recs []Record, vars, withVars []string) []Record {
	vset := make(map[string]bool, len(vars))
	for _, v := range vars {
		vset[v] = true
	}
	wset := make(map[string]bool, len(withVars))
	for _, w := range withVars {
		wset[w] = true
	}
	out := []Record{}
	for _, r := range recs {
		if vset[r.Var] && wset[r.WithVar] {
			out = append(out, r)
		}
	}
	return out
}

// Table converts recs to a go-gg table with one column per Record
// field, for text output.
func Table(recs []Record) *table.Table {
	return table.TableFromStructs(recs)
}
