// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader(`name,height,weight,note
a,1.5,60,x
b,1.8,NA,y
c,1.6,72,z
`))
	if err != nil {
		t.Fatal("unexpected Read error", err)
	}

	if want := []string{"name", "height", "weight", "note"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Fatalf("want columns %v; got %v", want, tab.Columns())
	}
	if _, ok := tab.Column("name").([]string); !ok {
		t.Errorf("column name: want []string; got %T", tab.Column("name"))
	}
	if _, ok := tab.Column("note").([]string); !ok {
		t.Errorf("column note: want []string; got %T", tab.Column("note"))
	}

	heights, ok := tab.Column("height").([]float64)
	if !ok {
		t.Fatalf("column height: want []float64; got %T", tab.Column("height"))
	}
	if want := []float64{1.5, 1.8, 1.6}; !reflect.DeepEqual(heights, want) {
		t.Errorf("want heights %v; got %v", want, heights)
	}

	// The missing weight becomes NaN, not a string column.
	weights, ok := tab.Column("weight").([]float64)
	if !ok {
		t.Fatalf("column weight: want []float64; got %T", tab.Column("weight"))
	}
	if !math.IsNaN(weights[1]) {
		t.Errorf("want NaN weight; got %v", weights[1])
	}
	if weights[0] != 60 || weights[2] != 72 {
		t.Errorf("want weights 60, 72; got %v, %v", weights[0], weights[2])
	}
}

func TestReadAllMissing(t *testing.T) {
	// A column with no values at all stays a string column; it
	// would otherwise look numeric vacuously.
	tab, err := Read(strings.NewReader("a,b\n1,.\n2,NA\n"))
	if err != nil {
		t.Fatal("unexpected Read error", err)
	}
	if _, ok := tab.Column("b").([]string); !ok {
		t.Errorf("column b: want []string; got %T", tab.Column("b"))
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("empty input: want error")
	}
	// Ragged rows are a malformed dataset.
	if _, err := Read(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("ragged row: want error")
	}
}
