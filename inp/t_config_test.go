// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/viper"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
)

func init() {
	io.Verbose = false
}

func decodeYaml(tst *testing.T, text string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(text)); err != nil {
		tst.Fatalf("cannot read yaml: %v", err)
	}
	return Decode(v)
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. defaults")

	cfg, err := decodeYaml(tst, "")
	if err != nil {
		tst.Fatalf("Decode failed: %v", err)
	}
	chk.String(tst, cfg.DirIn, ".")
	chk.String(tst, cfg.DirOut, "figures")
	chk.String(tst, cfg.Backend, "gonum")
	chk.String(tst, cfg.Format, "png")
	if cfg.Dpi != 300 {
		tst.Errorf("dpi should be 300; got %d", cfg.Dpi)
	}
	chk.Array(tst, "figsize", 1e-15, cfg.FigSize, []float64{10, 7})
	chk.Array(tst, "gridsize", 1e-15, cfg.GridSize, []float64{14, 10})
	chk.Array(tst, "times", 1e-15, cfg.Snapshots.Times, []float64{0, 0.1, 0.25, 0.5})
	chk.Float64(tst, "order", 1e-15, cfg.Convergence.Order, 2)
	chk.Float64(tst, "compareat", 1e-15, cfg.Snapshots.CompareAt, 0.25)
	chk.String(tst, cfg.Snapshots.Analytical, Dense)
	chk.String(tst, cfg.Errors.Yscale, Linear)
	chk.String(tst, cfg.Errors.CompareYscale, Log)

	if cfg.ConvergenceConfig() != (mth.Config{Scheme: "CN", Solver: "Thomas"}) {
		tst.Errorf("convergence reference should be CN/Thomas; got %v", cfg.ConvergenceConfig())
	}
	if cfg.ReferenceConfig() != (mth.Config{Scheme: "CN", Solver: "Thomas"}) {
		tst.Errorf("snapshot reference should be CN/Thomas; got %v", cfg.ReferenceConfig())
	}

	methods, styles, err := cfg.Registries()
	if err != nil {
		tst.Fatalf("Registries failed: %v", err)
	}
	chk.Strings(tst, "schemes", methods.Schemes(), []string{"Laasonen", "CN"})
	chk.Strings(tst, "solvers", methods.Solvers(), []string{"Thomas", "LU"})
	lbl, _ := methods.Label("CN")
	chk.String(tst, lbl, "Crank-Nicolson")
	if _, err := styles.ForConfig(mth.Config{Scheme: "Laasonen", Solver: "LU"}); err != nil {
		tst.Errorf("style of Laasonen/LU should exist: %v", err)
	}
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02. file values")

	cfg, err := decodeYaml(tst, `
dirin: /data/lab11
format: .SVG
figsize: [8, 6]
methods:
  schemes:
    - {id: FTCS}
    - {id: BTCS, label: Backward Euler}
  solvers:
    - {id: Thomas}
convergence:
  scheme: FTCS
  order: 1
snapshots:
  times: [0, 0.5]
  analytical: sparse
  every: 3
  compareat: 0
  yrange: [0.9, 2.1]
errors:
  yscale: log
styles:
  - {scheme: FTCS, color: "#00aa00"}
  - {scheme: BTCS, solver: Thomas, marker: x, line: ":"}
`)
	if err != nil {
		tst.Fatalf("Decode failed: %v", err)
	}
	chk.String(tst, cfg.DirIn, "/data/lab11")
	chk.String(tst, cfg.Format, "svg")
	chk.Array(tst, "figsize", 1e-15, cfg.FigSize, []float64{8, 6})
	chk.Array(tst, "times", 1e-15, cfg.Snapshots.Times, []float64{0, 0.5})
	chk.Array(tst, "yrange", 1e-15, cfg.Snapshots.Yrange, []float64{0.9, 2.1})
	chk.Float64(tst, "compareat", 1e-15, cfg.Snapshots.CompareAt, 0)
	chk.String(tst, cfg.Convergence.Solver, "Thomas")
	chk.String(tst, cfg.Snapshots.Scheme, "BTCS")

	methods, styles, err := cfg.Registries()
	if err != nil {
		tst.Fatalf("Registries failed: %v", err)
	}
	lbl, _ := methods.Label("FTCS")
	chk.String(tst, lbl, "FTCS")
	enc, _ := styles.ForScheme("FTCS")
	chk.String(tst, enc.Color, "#00aa00")
	enc, _ = styles.ForConfig(mth.Config{Scheme: "BTCS", Solver: "Thomas"})
	chk.String(tst, enc.Marker, "x")
	chk.String(tst, enc.Line, ":")
}

func Test_config03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config03. invalid values")

	for i, text := range []string{
		"backend: gnuplot",
		"dpi: 0",
		"figsize: [10]",
		"gridsize: [10, -1]",
		"convergence: {order: 0}",
		"convergence: {npts: 1}",
		"snapshots: {times: [0, 0.1, 0.1]}",
		"snapshots: {times: [-1]}",
		"snapshots: {analytical: dotted}",
		"snapshots: {every: 0}",
		"snapshots: {compareat: 0.3}",
		"snapshots: {yrange: [2, 1]}",
		"errors: {compareyscale: symlog}",
	} {
		_, err := decodeYaml(tst, text)
		if !errors.Is(err, errs.ErrConfiguration) {
			tst.Errorf("case %d (%s): configuration error expected; got %v", i, text, err)
		}
	}

	// unknown reference configuration
	cfg, err := decodeYaml(tst, "convergence: {scheme: RK4}")
	if err != nil {
		tst.Fatalf("Decode failed: %v", err)
	}
	_, _, err = cfg.Registries()
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("unknown convergence scheme must be rejected; got %v", err)
	}

	// unknown style target
	cfg, err = decodeYaml(tst, "styles: [{scheme: CN, solver: SOR, color: red}]")
	if err != nil {
		tst.Fatalf("Decode failed: %v", err)
	}
	_, _, err = cfg.Registries()
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("unknown style target must be rejected; got %v", err)
	}
}

func Test_config04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config04. file and environment")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "lab.yaml")
	err := os.WriteFile(fn, []byte("dirout: out\ndpi: 100\n"), 0644)
	if err != nil {
		tst.Fatalf("cannot write config: %v", err)
	}
	tst.Setenv("FDPLOT_DPI", "150")
	tst.Setenv("FDPLOT_SNAPSHOTS_ANALYTICAL", "sparse")

	cfg, err := ReadConfig(NewViper(fn), true)
	if err != nil {
		tst.Fatalf("ReadConfig failed: %v", err)
	}
	chk.String(tst, cfg.DirOut, "out")
	if cfg.Dpi != 150 {
		tst.Errorf("environment should override the file; dpi=%d", cfg.Dpi)
	}
	chk.String(tst, cfg.Snapshots.Analytical, Sparse)

	_, err = ReadConfig(NewViper(filepath.Join(dir, "none.yaml")), true)
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("missing explicit config file must be a configuration error; got %v", err)
	}
}
