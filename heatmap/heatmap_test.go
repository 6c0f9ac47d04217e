// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatmap

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/corrgram/colorscale"
	"github.com/aclements/corrgram/corr"
)

var testCells = []corr.Record{
	{Var: "X", WithVar: "Y", R: 0.8, P: 0.1041, N: 5},
	{Var: "X", WithVar: "Z", R: -0.3, P: 0.6238, N: 5},
	{Var: "Y", WithVar: "Y", R: 1, P: 0, N: 5},
}

func TestAxes(t *testing.T) {
	xs, ys := axes(testCells)
	if want := []string{"X", "Y"}; !reflect.DeepEqual(xs, want) {
		t.Errorf("want x axis %v; got %v", want, xs)
	}
	if want := []string{"Y", "Z"}; !reflect.DeepEqual(ys, want) {
		t.Errorf("want y axis %v; got %v", want, ys)
	}
}

func TestGrid(t *testing.T) {
	xs, ys := axes(testCells)
	g := newGrid(xs, ys, testCells)
	nc, nr := g.Dims()
	if nc != 2 || nr != 2 {
		t.Fatalf("want 2x2 grid; got %dx%d", nc, nr)
	}
	if got := g.Z(0, 0); got != 0.8 {
		t.Errorf("cell (X,Y): want 0.8; got %v", got)
	}
	if got := g.Z(0, 1); got != -0.3 {
		t.Errorf("cell (X,Z): want -0.3; got %v", got)
	}
	if got := g.Z(1, 0); got != 1.0 {
		t.Errorf("cell (Y,Y): want 1; got %v", got)
	}
	// No record for (Y,Z); the cell must render blank.
	if got := g.Z(1, 1); !math.IsNaN(got) {
		t.Errorf("cell (Y,Z): want NaN; got %v", got)
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "svg", testCells, colorscale.New(), "test"); err != nil {
		t.Fatal("unexpected Render error", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output does not look like SVG")
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "png", testCells, colorscale.New(), ""); err != nil {
		t.Fatal("unexpected Render error", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not look like PNG")
	}
}

func TestRenderEmpty(t *testing.T) {
	// An unmatched variable list produces an empty chart, not a
	// failure.
	var buf bytes.Buffer
	if err := Render(&buf, "", nil, colorscale.New(), "empty"); err != nil {
		t.Fatal("unexpected Render error", err)
	}
	if buf.Len() == 0 {
		t.Error("want non-empty SVG output")
	}
}

func TestRenderBadFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "gif", testCells, colorscale.New(), ""); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestFormatP(t *testing.T) {
	for _, test := range []struct {
		p    float64
		want string
	}{
		{0, "<.0001"},
		{0.00009, "<.0001"},
		{0.0001, ".0001"},
		{0.1041, ".1041"},
		{1, "1.0000"},
		{math.NaN(), ""},
	} {
		if got := FormatP(test.p); got != test.want {
			t.Errorf("FormatP(%v): want %q; got %q", test.p, test.want, got)
		}
	}
}
