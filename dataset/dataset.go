// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads delimited text datasets into go-gg tables.
//
// The input is CSV with a header row naming the columns. Columns
// whose values all parse as numbers become []float64 columns; other
// columns are kept as []string. The tokens "", ".", "NA", "NaN" and
// "nan" denote a missing observation and become NaN in numeric
// columns.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// Read parses a CSV dataset from r.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	header, body := rows[0], rows[1:]

	b := new(table.Builder)
	for j, name := range header {
		vals := make([]string, len(body))
		for i, row := range body {
			vals[i] = row[j]
		}
		if fvals, ok := toFloats(vals); ok {
			b.Add(name, fvals)
		} else {
			b.Add(name, vals)
		}
	}
	return b.Done(), nil
}

// toFloats converts vals to float64s if every non-missing value
// parses as a number and at least one value is present.
func toFloats(vals []string) ([]float64, bool) {
	out := make([]float64, len(vals))
	any := false
	for i, v := range vals {
		if missing(v) {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
		any = true
	}
	return out, any
}

func missing(v string) bool {
	switch v {
	case "", ".", "NA", "NaN", "nan":
		return true
	}
	return false
}
