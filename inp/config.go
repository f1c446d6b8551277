// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a configuration file, the environment and
// command line flags
package inp

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/viper"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/sty"
)

// EnvPrefix is the prefix of environment variables; e.g. FDPLOT_DIROUT
const EnvPrefix = "FDPLOT"

// ConfigName is the name of the configuration file searched when none is given
const ConfigName = "fdplot"

// analytical reference presentation
const (
	Dense  = "dense"  // continuous curve
	Sparse = "sparse" // every n-th point as markers
)

// y-axis scales
const (
	Linear = "linear"
	Log    = "log"
)

// MethodData holds the identifier and label of a scheme or solver
type MethodData struct {
	Id    string `mapstructure:"id"`    // identifier used in file names; e.g. CN
	Label string `mapstructure:"label"` // display label; e.g. Crank-Nicolson
}

// MethodsData holds the declared schemes and solvers
type MethodsData struct {
	Schemes []MethodData `mapstructure:"schemes"` // time-stepping schemes
	Solvers []MethodData `mapstructure:"solvers"` // linear solvers
}

// ConvergenceData holds settings of the error-vs-h figure
type ConvergenceData struct {
	Scheme string  `mapstructure:"scheme"` // scheme anchoring the reference curve; "" => last scheme
	Solver string  `mapstructure:"solver"` // solver whose error columns are plotted; "" => first solver
	Order  float64 `mapstructure:"order"`  // theoretical convergence order
	Npts   int     `mapstructure:"npts"`   // number of points of the reference curve
}

// SnapshotsData holds settings of the solution figures
type SnapshotsData struct {
	Times      []float64 `mapstructure:"times"`      // checkpoint times, in file column order
	Scheme     string    `mapstructure:"scheme"`     // scheme of the configuration providing the analytical columns; "" => last scheme
	Solver     string    `mapstructure:"solver"`     // solver of that configuration; "" => first solver
	Analytical string    `mapstructure:"analytical"` // "dense" or "sparse"
	Every      int       `mapstructure:"every"`      // subsampling of sparse analytical points and numerical markers
	CompareAt  float64   `mapstructure:"compareat"`  // time of the single-time comparison; negative => disabled
	Yrange     []float64 `mapstructure:"yrange"`     // y range of all cells; empty => automatic
}

// ErrorsData holds settings of the error-vs-time figures
type ErrorsData struct {
	Yscale        string `mapstructure:"yscale"`        // y scale of per-configuration figures: "linear" or "log"
	CompareYscale string `mapstructure:"compareyscale"` // y scale of the comparison figure
}

// StyleData overrides the encoding of a scheme (solver == "") or of a configuration
type StyleData struct {
	Scheme string  `mapstructure:"scheme"`
	Solver string  `mapstructure:"solver"`
	Color  string  `mapstructure:"color"`
	Marker string  `mapstructure:"marker"`
	Line   string  `mapstructure:"line"`
	Width  float64 `mapstructure:"width"`
	Size   float64 `mapstructure:"size"`
}

// Config holds all settings of a batch
type Config struct {

	// input and output
	DirIn    string    `mapstructure:"dirin"`    // directory with .dat files
	DirOut   string    `mapstructure:"dirout"`   // directory for figures
	Backend  string    `mapstructure:"backend"`  // renderer: "gonum" or "matplotlib"
	Format   string    `mapstructure:"format"`   // image format; e.g. "png"
	Dpi      int       `mapstructure:"dpi"`      // resolution
	FigSize  []float64 `mapstructure:"figsize"`  // single-axes figure size in inches
	GridSize []float64 `mapstructure:"gridsize"` // grid figure size in inches
	Quiet    bool      `mapstructure:"quiet"`    // no console output

	// figures
	Methods     MethodsData     `mapstructure:"methods"`
	Convergence ConvergenceData `mapstructure:"convergence"`
	Snapshots   SnapshotsData   `mapstructure:"snapshots"`
	Errors      ErrorsData      `mapstructure:"errors"`
	Styles      []StyleData     `mapstructure:"styles"`
}

// SetDefault sets defaults values of scalar fields. Lists are filled by PostProcess when they
// remain empty, since decoding into a pre-filled list would merge elements.
func (o *Config) SetDefault() {

	// input and output
	o.DirIn = "."
	o.DirOut = "figures"
	o.Backend = "gonum"
	o.Format = "png"
	o.Dpi = 300

	// figures
	o.Convergence.Order = 2
	o.Convergence.Npts = 100
	o.Snapshots.Analytical = Dense
	o.Snapshots.Every = 5
	o.Snapshots.CompareAt = 0.25
	o.Errors.Yscale = Linear
	o.Errors.CompareYscale = Log
}

// PostProcess fills empty lists, resolves default reference configurations and checks all values
func (o *Config) PostProcess() (err error) {

	// lists
	if len(o.FigSize) == 0 {
		o.FigSize = []float64{10, 7}
	}
	if len(o.GridSize) == 0 {
		o.GridSize = []float64{14, 10}
	}
	if len(o.Methods.Schemes) == 0 {
		o.Methods.Schemes = []MethodData{{"Laasonen", "Laasonen"}, {"CN", "Crank-Nicolson"}}
	}
	if len(o.Methods.Solvers) == 0 {
		o.Methods.Solvers = []MethodData{{"Thomas", "Thomas"}, {"LU", "LU decomposition"}}
	}
	if len(o.Snapshots.Times) == 0 {
		o.Snapshots.Times = []float64{0, 0.1, 0.25, 0.5}
	}

	// reference configurations
	last := o.Methods.Schemes[len(o.Methods.Schemes)-1].Id
	first := o.Methods.Solvers[0].Id
	if o.Convergence.Scheme == "" {
		o.Convergence.Scheme = last
	}
	if o.Convergence.Solver == "" {
		o.Convergence.Solver = first
	}
	if o.Snapshots.Scheme == "" {
		o.Snapshots.Scheme = last
	}
	if o.Snapshots.Solver == "" {
		o.Snapshots.Solver = first
	}

	// output
	switch o.Backend {
	case "gonum", "matplotlib":
	default:
		return bad("backend must be gonum or matplotlib; got %q", o.Backend)
	}
	o.Format = strings.TrimPrefix(strings.ToLower(o.Format), ".")
	if o.Format == "" {
		return bad("format must be given")
	}
	if o.DirOut == "" {
		return bad("dirout must be given")
	}
	if o.Dpi <= 0 {
		return bad("dpi must be positive; got %d", o.Dpi)
	}
	if !positivePair(o.FigSize) {
		return bad("figsize must hold two positive numbers; got %v", o.FigSize)
	}
	if !positivePair(o.GridSize) {
		return bad("gridsize must hold two positive numbers; got %v", o.GridSize)
	}

	// convergence
	if o.Convergence.Order <= 0 || math.IsInf(o.Convergence.Order, 0) || math.IsNaN(o.Convergence.Order) {
		return bad("convergence order must be positive; got %g", o.Convergence.Order)
	}
	if o.Convergence.Npts < 2 {
		return bad("convergence npts must be at least 2; got %d", o.Convergence.Npts)
	}

	// snapshots
	seen := make(map[float64]bool)
	for _, t := range o.Snapshots.Times {
		if t < 0 || math.IsInf(t, 0) || math.IsNaN(t) {
			return bad("checkpoint times must be finite and non-negative; got %g", t)
		}
		if seen[t] {
			return bad("checkpoint time %g is repeated", t)
		}
		seen[t] = true
	}
	if o.Snapshots.Analytical != Dense && o.Snapshots.Analytical != Sparse {
		return bad("analytical must be %q or %q; got %q", Dense, Sparse, o.Snapshots.Analytical)
	}
	if o.Snapshots.Every < 1 {
		return bad("every must be at least 1; got %d", o.Snapshots.Every)
	}
	if o.Snapshots.CompareAt >= 0 && !seen[o.Snapshots.CompareAt] {
		return bad("compareat=%g is not one of the checkpoint times %v", o.Snapshots.CompareAt, o.Snapshots.Times)
	}
	if len(o.Snapshots.Yrange) != 0 {
		if len(o.Snapshots.Yrange) != 2 || o.Snapshots.Yrange[0] >= o.Snapshots.Yrange[1] {
			return bad("yrange must hold min < max; got %v", o.Snapshots.Yrange)
		}
	}

	// errors
	for _, s := range []string{o.Errors.Yscale, o.Errors.CompareYscale} {
		if s != Linear && s != Log {
			return bad("y scale must be %q or %q; got %q", Linear, Log, s)
		}
	}
	return
}

// Registries builds the method and style registries
func (o *Config) Registries() (methods *mth.Registry, styles *sty.Registry, err error) {
	methods, err = mth.New(idents(o.Methods.Schemes), idents(o.Methods.Solvers))
	if err != nil {
		return
	}
	for _, cfg := range []mth.Config{o.ConvergenceConfig(), o.ReferenceConfig()} {
		if err = methods.Check(cfg); err != nil {
			return nil, nil, err
		}
	}
	overrides := make([]sty.Override, len(o.Styles))
	for i, s := range o.Styles {
		overrides[i] = sty.Override{Scheme: s.Scheme, Solver: s.Solver, Color: s.Color,
			Marker: s.Marker, Line: s.Line, Width: s.Width, Size: s.Size}
	}
	styles, err = sty.New(methods, overrides)
	if err != nil {
		return nil, nil, err
	}
	return
}

// ConvergenceConfig returns the configuration anchoring the reference curve of error-vs-h
func (o *Config) ConvergenceConfig() mth.Config {
	return mth.Config{Scheme: o.Convergence.Scheme, Solver: o.Convergence.Solver}
}

// ReferenceConfig returns the configuration whose snapshot file provides the analytical columns
func (o *Config) ReferenceConfig() mth.Config {
	return mth.Config{Scheme: o.Snapshots.Scheme, Solver: o.Snapshots.Solver}
}

// NewViper returns a viper instance searching cfgFile, or fdplot.{yaml,json,toml} in the
// working directory, with environment variables prefixed by FDPLOT_
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		v.BindEnv(key)
	}
	return v
}

// ReadConfig reads the configuration file, if any, and returns the processed settings. A file
// given explicitly must exist.
func ReadConfig(v *viper.Viper, explicit bool) (o *Config, err error) {
	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || explicit {
			return nil, chk.Err("cannot read configuration file: %v: %w", err, errs.ErrConfiguration)
		}
	}
	return Decode(v)
}

// Decode unmarshals the settings held by v over the defaults and post-processes them
func Decode(v *viper.Viper) (o *Config, err error) {
	o = new(Config)
	o.SetDefault()
	err = v.Unmarshal(o)
	if err != nil {
		return nil, chk.Err("cannot decode configuration: %v: %w", err, errs.ErrConfiguration)
	}
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// envKeys are the scalar settings that may be given by environment variables; e.g.
// FDPLOT_SNAPSHOTS_ANALYTICAL=sparse
var envKeys = []string{
	"dirin", "dirout", "backend", "format", "dpi", "quiet",
	"convergence.scheme", "convergence.solver", "convergence.order", "convergence.npts",
	"snapshots.scheme", "snapshots.solver", "snapshots.analytical", "snapshots.every", "snapshots.compareat",
	"errors.yscale", "errors.compareyscale",
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func bad(msg string, prm ...interface{}) error {
	return chk.Err("configuration: "+msg+": %w", append(prm, errs.ErrConfiguration)...)
}

func positivePair(v []float64) bool {
	return len(v) == 2 && utl.Min(v[0], v[1]) > 0
}

func idents(data []MethodData) (res []mth.Ident) {
	res = make([]mth.Ident, len(data))
	for i, d := range data {
		res[i] = mth.Ident{Id: d.Id, Label: d.Label}
	}
	return
}
