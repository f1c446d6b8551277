// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fdlab/fdplot/sty"
)

// default widths in points when an encoding leaves them at zero
const (
	defaultLineWidth   = 1.0
	defaultMarkerSize  = 2.5
	defaultDotSize     = 1.0
	defaultLegendWidth = 0.24 // fraction of the figure width used by shared legends
)

func getColor(enc sty.Encoding) color.Color {
	rgba, err := sty.ParseColor(enc.Color)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

func getDashes(line string) []vg.Length {
	switch line {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case ":":
		return []vg.Length{vg.Points(1.5), vg.Points(2)}
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1.5), vg.Points(2)}
	}
	return nil
}

func getLineStyle(enc sty.Encoding) draw.LineStyle {
	w := enc.Width
	if w <= 0 {
		w = defaultLineWidth
	}
	return draw.LineStyle{Color: getColor(enc), Width: vg.Points(w), Dashes: getDashes(enc.Line)}
}

func getGlyphStyle(enc sty.Encoding) draw.GlyphStyle {
	r := enc.Size
	if r <= 0 {
		r = defaultMarkerSize
	}
	var shape draw.GlyphDrawer
	switch enc.Marker {
	case "s":
		shape = draw.BoxGlyph{}
	case "^":
		shape = draw.PyramidGlyph{}
	case "x":
		shape = draw.CrossGlyph{}
	case "+":
		shape = draw.PlusGlyph{}
	case ".":
		shape, r = draw.CircleGlyph{}, defaultDotSize
	default:
		shape = draw.CircleGlyph{}
	}
	return draw.GlyphStyle{Color: getColor(enc), Radius: vg.Points(r), Shape: shape}
}

// getPoints returns the (x, y) pairs in file order, dropping those that cannot be shown on
// logarithmic axes
func getPoints(x, y []float64, xlog, ylog bool) plotter.XYs {
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if (xlog && x[i] <= 0) || (ylog && y[i] <= 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	return xys
}

// getEvery returns every n-th point, starting with the first
func getEvery(xys plotter.XYs, n int) plotter.XYs {
	if n <= 1 {
		return xys
	}
	res := make(plotter.XYs, 0, len(xys)/n+1)
	for i := 0; i < len(xys); i += n {
		res = append(res, xys[i])
	}
	return res
}

// subsample is getEvery for plain slices
func subsample(x, y []float64, n int) (xs, ys []float64) {
	if n <= 1 {
		return x, y
	}
	for i := 0; i < len(x); i += n {
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return
}
