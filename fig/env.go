// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fig implements the figure generators: convergence against step size, evolution and
// comparison of solution snapshots, and evolution of the maximum error in time
package fig

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/dat"
	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/inp"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/out"
	"github.com/fdlab/fdplot/sty"
)

// Env holds what generators need. Registries are read-only and may be shared.
type Env struct {
	DirIn   string        // directory with .dat files
	Methods *mth.Registry // schemes and solvers
	Styles  *sty.Registry // encodings
	Out     *out.Manager  // figures
	Cfg     *inp.Config   // settings
}

// NewEnv builds registries, renderer and output manager from the settings
func NewEnv(cfg *inp.Config) (o *Env, err error) {
	methods, styles, err := cfg.Registries()
	if err != nil {
		return
	}
	rnd, err := out.NewRenderer(cfg.Backend)
	if err != nil {
		return
	}
	mgr, err := out.NewManager(out.Options{
		DirOut:     cfg.DirOut,
		Format:     cfg.Format,
		Dpi:        cfg.Dpi,
		Width:      cfg.FigSize[0],
		Height:     cfg.FigSize[1],
		GridWidth:  cfg.GridSize[0],
		GridHeight: cfg.GridSize[1],
	}, rnd)
	if err != nil {
		return
	}
	return &Env{DirIn: cfg.DirIn, Methods: methods, Styles: styles, Out: mgr, Cfg: cfg}, nil
}

// load reads a per-configuration table, which must hold at least one row
func (o *Env) load(kind dat.Kind, cfg mth.Config, schema *dat.Schema) (*dat.Table, error) {
	tab, err := dat.Load(filepath.Join(o.DirIn, dat.File(kind, cfg)), schema)
	if err != nil {
		return nil, err
	}
	if tab.Nrows() == 0 {
		return nil, chk.Err("%s has no rows: %w", tab.Path(), errs.ErrInsufficientData)
	}
	return tab, nil
}

// loadOthers reads the tables of all configurations but skip. Missing tables are omitted with
// a notice; other errors are returned.
func (o *Env) loadOthers(kind dat.Kind, skip *mth.Config, schema *dat.Schema, figkey string) (cfgs []mth.Config, tabs []*dat.Table, err error) {
	for _, cfg := range o.Methods.Configs() {
		if skip != nil && cfg == *skip {
			continue
		}
		tab, e := o.load(kind, cfg, schema)
		if errs.IsMissing(e) {
			io.Pforan("notice: %v; %v omitted from %s\n", e, cfg, figkey)
			continue
		}
		if e != nil {
			return nil, nil, e
		}
		cfgs = append(cfgs, cfg)
		tabs = append(tabs, tab)
	}
	return
}

// label returns the display label of a configuration
func (o *Env) label(cfg mth.Config) string {
	lbl, err := o.Methods.ConfigLabel(cfg)
	if err != nil {
		chk.Panic("configuration %v was not declared: %v", cfg, err)
	}
	return lbl
}

// analytical adds the analytical reference to a subplot
func (o *Env) analytical(s *out.SplotDat, x, y []float64) {
	sparse := o.Cfg.Snapshots.Analytical == inp.Sparse
	e := s.Plot(x, y, "Analytical", o.Styles.Analytical(sparse))
	if sparse {
		e.Every = o.Cfg.Snapshots.Every
	}
}

// hasTime tells whether t is a checkpoint time
func (o *Env) hasTime(t float64) bool {
	for _, v := range o.Cfg.Snapshots.Times {
		if v == t {
			return true
		}
	}
	return false
}
