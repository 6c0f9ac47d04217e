// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap renders a correlation record set as a color-coded
// grid with a continuous legend.
//
// The x axis holds the distinct Var names and the y axis the distinct
// WithVar names, each in order of first appearance. Every cell is
// filled with the color-scale bucket of its coefficient and overlaid
// with its p-value. Cells for pairs that produced no record are left
// blank, so an over- or under-specified variable list degrades to a
// partially or fully empty chart rather than an error.
package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/aclements/corrgram/colorscale"
	"github.com/aclements/corrgram/corr"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	cellSize    = 0.75 * vg.Inch
	legendWidth = 0.9 * vg.Inch
)

// Render draws cells as a heatmap and writes the image to w. Format
// is "svg", "png" or "pdf"; "" means "svg". An empty cell set
// renders an empty chart.
func Render(w io.Writer, format string, cells []corr.Record, scale *colorscale.Scale, title string) error {
	main, nx, ny := build(cells, scale, title)
	legend := buildLegend(scale)

	width := vg.Length(max(nx, 1))*cellSize + 1.2*vg.Inch + legendWidth
	height := vg.Length(max(ny, 1))*cellSize + vg.Inch

	switch format {
	case "", "svg":
		c := vgsvg.New(width, height)
		drawPlots(draw.New(c), main, legend)
		_, err := c.WriteTo(w)
		return err
	case "pdf":
		c := vgpdf.New(width, height)
		drawPlots(draw.New(c), main, legend)
		_, err := c.WriteTo(w)
		return err
	case "png":
		return renderPNG(w, width, height, main, legend)
	}
	return fmt.Errorf("unknown format %q", format)
}

// renderPNG rasterizes at double resolution and scales down, which
// smooths tile and text edges considerably at typical cell sizes.
func renderPNG(w io.Writer, width, height vg.Length, main, legend *plot.Plot) error {
	c := vgimg.NewWith(vgimg.UseWH(2*width, 2*height))
	drawPlots(draw.New(c), main, legend)

	src := c.Image()
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()/2, sb.Dy()/2))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return png.Encode(w, dst)
}

// drawPlots places the heatmap and the legend side by side on one
// canvas, with the legend in a fixed-width strip on the right.
func drawPlots(dc draw.Canvas, main, legend *plot.Plot) {
	width := dc.Rectangle.Max.X - dc.Rectangle.Min.X
	main.Draw(draw.Crop(dc, 0, -legendWidth, 0, 0))
	lc := draw.Crop(dc, width-legendWidth, 0, 0, 0)
	legend.Draw(draw.Crop(lc, 0.1*vg.Inch, -0.3*vg.Inch, 0.4*vg.Inch, 0.4*vg.Inch))
}

func build(cells []corr.Record, scale *colorscale.Scale, title string) (*plot.Plot, int, int) {
	xs, ys := axes(cells)

	p := plot.New()
	p.Title.Text = title
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if len(xs) == 0 || len(ys) == 0 {
		p.HideAxes()
		return p, 0, 0
	}

	g := newGrid(xs, ys, cells)
	hm := plotter.NewHeatMap(g, scale.Palette(len(scale.Buckets())))
	hm.Min, hm.Max = scale.Min(), scale.Max()
	p.Add(hm)

	if labels, err := pLabels(xs, ys, cells, scale); err == nil {
		p.Add(labels)
	}

	p.NominalX(xs...)
	p.NominalY(ys...)
	return p, len(xs), len(ys)
}

// buildLegend returns a plot holding only the vertical gradient bar
// for scale, with the correlation values ticked along its y axis.
func buildLegend(scale *colorscale.Scale) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: scale, Vertical: true})
	p.HideX()
	return p
}

// axes returns the distinct Var and WithVar names of cells in order
// of first appearance.
func axes(cells []corr.Record) (xs, ys []string) {
	xseen := make(map[string]bool)
	yseen := make(map[string]bool)
	for _, c := range cells {
		if !xseen[c.Var] {
			xseen[c.Var] = true
			xs = append(xs, c.Var)
		}
		if !yseen[c.WithVar] {
			yseen[c.WithVar] = true
			ys = append(ys, c.WithVar)
		}
	}
	return
}

// grid adapts a cell set to plotter.GridXYZ. Pairs with no record
// are NaN and render as blanks.
type grid struct {
	xs, ys []string
	z      []float64
}

func newGrid(xs, ys []string, cells []corr.Record) *grid {
	g := &grid{xs: xs, ys: ys, z: make([]float64, len(xs)*len(ys))}
	for i := range g.z {
		g.z[i] = math.NaN()
	}
	xi := index(xs)
	yi := index(ys)
	for _, c := range cells {
		g.z[yi[c.WithVar]*len(xs)+xi[c.Var]] = c.R
	}
	return g
}

func (g *grid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g *grid) X(c int) float64    { return float64(c) }
func (g *grid) Y(r int) float64    { return float64(r) }
func (g *grid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }

func index(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}

// pLabels builds the p-value overlay, one centered label per cell.
// Text switches to white on dark buckets.
func pLabels(xs, ys []string, cells []corr.Record, scale *colorscale.Scale) (*plotter.Labels, error) {
	xi := index(xs)
	yi := index(ys)
	var data plotter.XYLabels
	var fills []float64
	for _, c := range cells {
		data.XYs = append(data.XYs, plotter.XY{X: float64(xi[c.Var]), Y: float64(yi[c.WithVar])})
		data.Labels = append(data.Labels, FormatP(c.P))
		fills = append(fills, c.R)
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		if c, ok := scale.Lookup(fills[i]); ok && dark(c) {
			labels.TextStyle[i].Color = white
		}
	}
	return labels, nil
}

var white = color.White

// dark reports whether text on c needs a light color to be legible.
func dark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return luma < 0.5*0xffff
}

// FormatP formats a two-tailed p-value the way correlation procedures
// conventionally print them: four decimals with no leading zero, with
// a "<.0001" floor.
func FormatP(p float64) string {
	if math.IsNaN(p) {
		return ""
	}
	if p < 0.0001 {
		return "<.0001"
	}
	s := fmt.Sprintf("%.4f", p)
	return strings.TrimPrefix(s, "0")
}
