// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/sty"
)

func init() {
	io.Verbose = false
}

// fakeRenderer records calls and writes an empty file
type fakeRenderer struct {
	rendered []string
	released []string
	fail     error
}

func (o *fakeRenderer) Name() string                { return "fake" }
func (o *fakeRenderer) Supports(format string) bool { return format == "png" }
func (o *fakeRenderer) Release(fig *Figure)         { o.released = append(o.released, fig.Key) }
func (o *fakeRenderer) Render(fig *Figure, opts *Options, path string) error {
	if o.fail != nil {
		return o.fail
	}
	o.rendered = append(o.rendered, fig.Key)
	return os.WriteFile(path, nil, 0644)
}

func testOptions(dirout string) Options {
	return Options{DirOut: dirout, Format: "png", Dpi: 50, Width: 10, Height: 7, GridWidth: 14, GridHeight: 10}
}

func Test_key01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("key01")

	cfg := mth.Config{Scheme: "CN", Solver: "Thomas"}
	chk.String(tst, Key(Convergence, nil), "error_vs_h")
	chk.String(tst, Key(Evolution, &cfg), "solution_evolution_CN_Thomas")
	chk.String(tst, Key(Evolution, nil, "comparison"), "solution_evolution_comparison")
	chk.String(tst, Key(Comparison, nil, io.Sf("t%g", 0.25)), "solution_comparison_t0.25")
	chk.String(tst, Key(ErrorTime, &cfg), "error_vs_time_CN_Thomas")
	chk.String(tst, Key(ErrorTime, nil, "comparison"), "error_vs_time_comparison")
}

func Test_manager01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("manager01")

	rnd := &fakeRenderer{}
	bad := []Options{
		{Format: "png", Dpi: 50, Width: 1, Height: 1, GridWidth: 1, GridHeight: 1},
		{DirOut: "x", Format: "png", Width: 1, Height: 1, GridWidth: 1, GridHeight: 1},
		{DirOut: "x", Format: "png", Dpi: 50, Width: 0, Height: 1, GridWidth: 1, GridHeight: 1},
		{DirOut: "x", Format: "svg", Dpi: 50, Width: 1, Height: 1, GridWidth: 1, GridHeight: 1},
	}
	for i, opts := range bad {
		_, err := NewManager(opts, rnd)
		if !errors.Is(err, errs.ErrConfiguration) {
			tst.Errorf("options %d: configuration error expected; got %v", i, err)
		}
	}
	_, err := NewRenderer("gnuplot")
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("unknown backend must be a configuration error; got %v", err)
	}
	for _, name := range []string{"gonum", "matplotlib"} {
		r, err := NewRenderer(name)
		if err != nil {
			tst.Errorf("NewRenderer(%q) failed: %v", name, err)
			continue
		}
		chk.String(tst, r.Name(), name)
	}
}

func Test_manager02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("manager02. figure lifecycle")

	dirout := tst.TempDir()
	rnd := &fakeRenderer{}
	mgr, err := NewManager(testOptions(dirout), rnd)
	if err != nil {
		tst.Fatalf("NewManager failed: %v", err)
	}

	// single axes figure
	f1 := mgr.NewFigure("one", "", 1, 1)
	chk.Float64(tst, "width", 1e-15, f1.Width, 10)
	chk.Float64(tst, "height", 1e-15, f1.Height, 7)
	s := f1.Splot("a", "title")
	s.Plot([]float64{1, 2}, []float64{3, 4}, "A", sty.Encoding{Color: "red", Line: "-"})

	// grid figure
	f2 := mgr.NewFigure("grid", "Grid", 2, 2)
	chk.Float64(tst, "grid width", 1e-15, f2.Width, 14)
	chk.Float64(tst, "grid height", 1e-15, f2.Height, 10)
	if mgr.Open() != 2 {
		tst.Errorf("two figures should be open; got %d", mgr.Open())
	}

	// save
	path, err := mgr.Save(f1)
	if err != nil {
		tst.Fatalf("Save failed: %v", err)
	}
	chk.String(tst, path, filepath.Join(dirout, "one.png"))
	_, err = mgr.Save(f2)
	if err == nil {
		tst.Errorf("figure without subplots must not be saved")
	}

	// close twice
	f1.Close()
	f1.Close()
	f2.Close()
	if mgr.Open() != 0 {
		tst.Errorf("all figures should be closed; got %d open", mgr.Open())
	}
	chk.Strings(tst, "rendered", rnd.rendered, []string{"one"})
	chk.Strings(tst, "released", rnd.released, []string{"one", "grid"})
}

func Test_manager03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("manager03. render failure")

	rnd := &fakeRenderer{fail: chk.Err("boom: %w", errs.ErrNumericAnomaly)}
	mgr, err := NewManager(testOptions(tst.TempDir()), rnd)
	if err != nil {
		tst.Fatalf("NewManager failed: %v", err)
	}
	fig := mgr.NewFigure("bad", "", 1, 1)
	defer fig.Close()
	fig.Splot("a", "").Plot([]float64{1}, []float64{1}, "", sty.Encoding{Color: "red", Marker: "o"})
	_, err = mgr.Save(fig)
	if !errors.Is(err, errs.ErrNumericAnomaly) {
		tst.Errorf("render error must be passed on; got %v", err)
	}
}

func Test_figure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("figure01. shared legend")

	mgr, err := NewManager(testOptions(tst.TempDir()), &fakeRenderer{})
	if err != nil {
		tst.Fatalf("NewManager failed: %v", err)
	}
	fig := mgr.NewFigure("legend", "", 1, 2)
	defer fig.Close()
	enc := sty.Encoding{Color: "blue", Line: "-"}
	a := fig.Splot("a", "")
	a.Plot([]float64{0}, []float64{0}, "CN", enc)
	a.Plot([]float64{0}, []float64{0}, "", enc)
	a.Plot([]float64{0}, []float64{0}, "FTCS", enc)
	b := fig.Splot("b", "")
	b.Plot([]float64{0}, []float64{0}, "CN", enc)
	b.Plot([]float64{0}, []float64{0}, "Analytical", enc)

	var labels []string
	for _, e := range fig.Legend() {
		labels = append(labels, e.Label)
	}
	chk.Strings(tst, "labels", labels, []string{"CN", "FTCS", "Analytical"})
	if fig.Legend()[0] != a.Data[0] {
		tst.Errorf("first entity of a label must be kept")
	}

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("a third subplot in a 1x2 grid should panic")
		}
	}()
	fig.Splot("c", "")
}

func Test_figure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("figure02. series lengths")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("series with different lengths should panic")
		}
	}()
	var s SplotDat
	s.Plot([]float64{1, 2}, []float64{1}, "bad", sty.Encoding{Color: "red", Line: "-"})
}
