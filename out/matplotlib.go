// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/sty"
)

// Matplotlib renders figures by driving python/matplotlib through gosl/plt. It needs python3
// with matplotlib installed and shares the global state of plt; figures must be rendered one
// at a time.
type Matplotlib struct{}

// Name returns "matplotlib"
func (o Matplotlib) Name() string { return "matplotlib" }

// Supports tells whether format can be written
func (o Matplotlib) Supports(format string) bool { return format == "png" }

// Release clears the matplotlib buffer
func (o Matplotlib) Release(fig *Figure) { plt.Reset(false, nil) }

// Render draws fig and saves it through matplotlib
func (o Matplotlib) Render(fig *Figure, opts *Options, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("matplotlib failed on figure %q: %v", fig.Key, r)
		}
	}()
	plt.Reset(true, &plt.A{Prop: fig.Height / fig.Width, WidthPt: fig.Width * 72, Dpi: opts.Dpi})

	// labels of shared legends go to the first entity only
	legend := make(map[*PltEntity]bool)
	if fig.SharedLegend {
		for _, e := range fig.Legend() {
			legend[e] = true
		}
	}

	for k, s := range fig.Splots {
		if len(fig.Splots) > 1 {
			plt.Subplot(fig.Nrow, fig.Ncol, k+1)
		}
		npts := 0
		for _, e := range s.Data {
			xys := getPoints(e.X, e.Y, s.Xlog, s.Ylog)
			if len(xys) == 0 {
				continue
			}
			npts += len(xys)
			x, y := make([]float64, len(xys)), make([]float64, len(xys))
			for i, p := range xys {
				x[i], y[i] = p.X, p.Y
			}
			label := e.Label
			if fig.SharedLegend && !legend[e] {
				label = ""
			}
			mplPlot(x, y, label, e.Style, e.Every)
		}
		if npts == 0 && (s.Xlog || s.Ylog) {
			return chk.Err("figure %q: subplot %q has no positive values to show on logarithmic axes: %w",
				fig.Key, s.Title, errs.ErrNumericAnomaly)
		}
		if s.Xlog {
			plt.SetXlog()
		}
		if s.Ylog {
			plt.SetYlog()
		}
		if len(s.Yrange) == 2 {
			plt.AxisYrange(s.Yrange[0], s.Yrange[1])
		}
		title := s.Title
		if k == 0 && fig.Title != "" {
			title = fig.Title
			if s.Title != "" && len(fig.Splots) > 1 {
				title = fig.Title + ": " + s.Title
			}
		}
		if title != "" {
			plt.Title(title, nil)
		}
		plt.Gll(s.Xlbl, s.Ylbl, nil)
	}
	plt.Save(filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".png"))
	return
}

// mplPlot draws one series; markers are subsampled separately from the line
func mplPlot(x, y []float64, label string, enc sty.Encoding, every int) {
	w := enc.Width
	if w <= 0 {
		w = defaultLineWidth
	}
	switch {
	case enc.Marker == "":
		plt.Plot(x, y, &plt.A{C: mplColor(enc.Color), Ls: enc.Line, Lw: w, L: label})
	case enc.Line == "":
		xs, ys := subsample(x, y, every)
		plt.Plot(xs, ys, &plt.A{C: mplColor(enc.Color), M: enc.Marker, Ls: "none", L: label})
	case every > 1:
		plt.Plot(x, y, &plt.A{C: mplColor(enc.Color), Ls: enc.Line, Lw: w, L: label})
		xs, ys := subsample(x, y, every)
		plt.Plot(xs, ys, &plt.A{C: mplColor(enc.Color), M: enc.Marker, Ls: "none"})
	default:
		plt.Plot(x, y, &plt.A{C: mplColor(enc.Color), M: enc.Marker, Ls: enc.Line, Lw: w, L: label})
	}
}

// mplColor returns a color matplotlib understands
func mplColor(name string) string {
	rgba, err := sty.ParseColor(name)
	if err != nil {
		return "k"
	}
	return io.Sf("#%02x%02x%02x", rgba[0], rgba[1], rgba[2])
}
