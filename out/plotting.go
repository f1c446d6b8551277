// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/sty"
)

// Kind names a comparison type; it prefixes the file name of the figure
type Kind string

// comparison types
const (
	Convergence Kind = "error_vs_h"          // error against step size (log-log)
	Evolution   Kind = "solution_evolution"  // snapshots at all checkpoint times
	Comparison  Kind = "solution_comparison" // all configurations at one checkpoint time
	ErrorTime   Kind = "error_vs_time"       // maximum error against time
)

// Key returns the deterministic file key of a figure; e.g. Key(ErrorTime, &cfg) =>
// "error_vs_time_CN_Thomas" and Key(Evolution, nil, "comparison") => "solution_evolution_comparison"
func Key(kind Kind, cfg *mth.Config, tags ...string) string {
	parts := []string{string(kind)}
	if cfg != nil {
		parts = append(parts, cfg.Key())
	}
	parts = append(parts, tags...)
	return strings.Join(parts, "_")
}

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Label string       // legend label; "" => not in legend
	X     []float64    // x-values
	Y     []float64    // y-values
	Style sty.Encoding // style
	Every int          // draw markers at every n-th point only; 0 or 1 => all points
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	Xlog   bool         // logarithmic x-axis
	Ylog   bool         // logarithmic y-axis
	Yrange []float64    // y range; empty => automatic
	Data   []*PltEntity // data and styles to be plotted
}

// Plot adds a series to the subplot
func (o *SplotDat) Plot(x, y []float64, label string, style sty.Encoding) *PltEntity {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, label=%q", len(x), len(y), label)
	}
	e := &PltEntity{Label: label, X: x, Y: y, Style: style}
	o.Data = append(o.Data, e)
	return e
}

// Figure holds the subplots of one artifact laid out in a grid. Figures are acquired with
// Manager.NewFigure and must be released with Close.
type Figure struct {
	Key          string      // file key; see Key
	Title        string      // figure title; "" => none
	Nrow         int         // number of grid rows
	Ncol         int         // number of grid columns
	Width        float64     // width in inches
	Height       float64     // height in inches
	SharedLegend bool        // one deduplicated legend for the whole figure instead of one per subplot
	Splots       []*SplotDat // subplots in row-major order

	mgr    *Manager // owner
	closed bool     // released
}

// Splot activates a new subplot window
func (o *Figure) Splot(id, title string) *SplotDat {
	if len(o.Splots) == o.Nrow*o.Ncol {
		chk.Panic("figure %q has a %dx%d grid and cannot hold another subplot", o.Key, o.Nrow, o.Ncol)
	}
	s := &SplotDat{Id: id, Title: title}
	o.Splots = append(o.Splots, s)
	return s
}

// Legend returns the labeled entities of all subplots, keeping the first entity of each label
func (o *Figure) Legend() (res []*PltEntity) {
	seen := make(map[string]bool)
	for _, s := range o.Splots {
		for _, e := range s.Data {
			if e.Label == "" || seen[e.Label] {
				continue
			}
			seen[e.Label] = true
			res = append(res, e)
		}
	}
	return
}

// Closed tells whether the figure was released
func (o *Figure) Closed() bool { return o.closed }

// Close releases the figure and the drawing resources held by the renderer. It may be
// called more than once.
func (o *Figure) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.mgr != nil {
		o.mgr.release(o)
	}
}
