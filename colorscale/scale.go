// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale maps correlation coefficients to colors.
//
// A Scale partitions the correlation range [-1, 1) into 200 half-open
// buckets of width 0.01 and assigns each bucket a color on a blue
// lightness ramp: near-zero correlations are light, correlations near
// ±1 are dark. The same Scale doubles as a continuous color map for
// legend rendering, so cell fills and the legend gradient always
// agree.
package colorscale

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// A Bucket is one interval of the correlation range and its color.
// Min is inclusive and Max is exclusive, except that the final bucket
// also covers its upper bound so a correlation of exactly 1 is not
// left colorless.
type Bucket struct {
	Min, Max float64
	Color    color.Color
}

// A Scale is a bucketed correlation-to-color lookup table. It
// implements palette.ColorMap over [-1, 1].
type Scale struct {
	buckets  []Bucket
	min, max float64
	alpha    float64
}

// New returns a Scale covering [-1, 1] in 200 buckets of width 0.01.
//
// The lightness of bucket i (counting from -100) is derived from |i|:
// rescaled from [0, 100] to [5, 100] and then inverted so that
// lightness 100 falls at zero correlation and lightness 5 at the
// extremes. Hue is fixed at 240 (blue) with full saturation.
func New() *Scale {
	buckets := make([]Bucket, 0, 200)
	for i := -100; i < 100; i++ {
		l := math.Abs(float64(i))
		l = 5 + 0.95*l
		l = 105 - l
		if l < 5 {
			l = 5
		} else if l > 100 {
			l = 100
		}
		buckets = append(buckets, Bucket{
			Min:   float64(i) / 100,
			Max:   float64(i+1) / 100,
			Color: hlsToRGB(240, l/100, 1),
		})
	}
	return &Scale{buckets: buckets, min: -1, max: 1, alpha: 1}
}

// Buckets returns the buckets of s in increasing order of Min.
func (s *Scale) Buckets() []Bucket {
	return s.buckets
}

// Lookup returns the color of the bucket containing r. The second
// result is false if r is NaN or outside [Min, Max].
func (s *Scale) Lookup(r float64) (color.Color, bool) {
	if math.IsNaN(r) || r < s.min || r > s.max {
		return nil, false
	}
	i := int(math.Floor((r - s.min) / (s.max - s.min) * float64(len(s.buckets))))
	if i >= len(s.buckets) {
		i = len(s.buckets) - 1
	}
	return s.buckets[i].Color, true
}

// At implements palette.ColorMap.
func (s *Scale) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < s.min:
		return nil, palette.ErrUnderflow
	case v > s.max:
		return nil, palette.ErrOverflow
	}
	c, _ := s.Lookup(v)
	return c, nil
}

// Min implements palette.ColorMap.
func (s *Scale) Min() float64 { return s.min }

// SetMin implements palette.ColorMap.
func (s *Scale) SetMin(v float64) { s.min = v }

// Max implements palette.ColorMap.
func (s *Scale) Max() float64 { return s.max }

// SetMax implements palette.ColorMap.
func (s *Scale) SetMax(v float64) { s.max = v }

// Alpha implements palette.ColorMap.
func (s *Scale) Alpha() float64 { return s.alpha }

// SetAlpha implements palette.ColorMap.
func (s *Scale) SetAlpha(a float64) { s.alpha = a }

// Palette implements palette.ColorMap. The returned palette samples
// s at n evenly spaced points across [Min, Max].
func (s *Scale) Palette(n int) palette.Palette {
	colors := make(sampled, n)
	for i := range colors {
		v := s.min + (float64(i)+0.5)/float64(n)*(s.max-s.min)
		c, ok := s.Lookup(v)
		if !ok {
			c = color.Black
		}
		colors[i] = c
	}
	return colors
}

type sampled []color.Color

func (p sampled) Colors() []color.Color { return p }

// hlsToRGB converts an HLS color to RGBA. h is in degrees; l and s
// are in [0, 1].
func hlsToRGB(h, l, s float64) color.RGBA {
	h = math.Mod(h, 360) / 360
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	conv := func(x float64) uint8 {
		return uint8(math.Round(255 * hueToRGB(m1, m2, x)))
	}
	return color.RGBA{
		R: conv(h + 1.0/3),
		G: conv(h),
		B: conv(h - 1.0/3),
		A: 255,
	}
}

func hueToRGB(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*6*h
	case h < 1.0/2:
		return m2
	case h < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}
