// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fdlab/fdplot/dat"
	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/out"
)

// Snapshots plots the numerical solution of one configuration against the analytical one,
// one cell per checkpoint time
func Snapshots(env *Env, cfg mth.Config) (path string, err error) {
	if err = env.Methods.Check(cfg); err != nil {
		return
	}
	enc, err := env.Styles.ForConfig(cfg)
	if err != nil {
		return
	}

	// figure
	times := env.Cfg.Snapshots.Times
	nrow, ncol := utl.BestSquare(len(times))
	key := out.Key(out.Evolution, &cfg)
	fig := env.Out.NewFigure(key, io.Sf("Solution evolution (%s)", env.label(cfg)), nrow, ncol)
	defer fig.Close()

	// data
	tab, err := env.load(dat.Snapshots, cfg, dat.SnapshotSchema(times))
	if err != nil {
		return
	}
	x := tab.Col(dat.ColX)

	// cells
	for _, t := range times {
		s := newCell(env, fig, t)
		env.analytical(s, x, tab.Col(dat.AnaColumn(t)))
		s.Plot(x, tab.Col(dat.NumColumn(t)), "Numerical", enc.AsMarkers())
	}
	return env.Out.Save(fig)
}

// SnapshotsAll plots all configurations in one grid with a shared legend. The analytical
// columns come from the reference configuration, whose table must exist.
func SnapshotsAll(env *Env) (path string, err error) {
	ref := env.Cfg.ReferenceConfig()
	if err = env.Methods.Check(ref); err != nil {
		return
	}

	// figure
	times := env.Cfg.Snapshots.Times
	nrow, ncol := utl.BestSquare(len(times))
	key := out.Key(out.Evolution, nil, "comparison")
	fig := env.Out.NewFigure(key, "Solution evolution: all methods", nrow, ncol)
	fig.SharedLegend = true
	defer fig.Close()

	// data
	cfgs, tabs, err := loadWithReference(env, ref, dat.SnapshotSchema(times), key)
	if err != nil {
		return
	}
	x := tabs[0].Col(dat.ColX)

	// cells
	for _, t := range times {
		s := newCell(env, fig, t)
		env.analytical(s, x, tabs[0].Col(dat.AnaColumn(t)))
		err = plotNumerical(env, s, cfgs, tabs, t)
		if err != nil {
			return
		}
	}
	return env.Out.Save(fig)
}

// SnapshotAt plots all configurations at one checkpoint time on one axes
func SnapshotAt(env *Env, t float64) (path string, err error) {
	if !env.hasTime(t) {
		return "", chk.Err("t=%g is not a checkpoint time %v: %w", t, env.Cfg.Snapshots.Times, errs.ErrConfiguration)
	}
	ref := env.Cfg.ReferenceConfig()
	if err = env.Methods.Check(ref); err != nil {
		return
	}

	// figure
	key := out.Key(out.Comparison, nil, io.Sf("t%g", t))
	fig := env.Out.NewFigure(key, io.Sf("Solutions of all methods at t = %g", t), 1, 1)
	defer fig.Close()

	// data
	cfgs, tabs, err := loadWithReference(env, ref, dat.SnapshotSchema(env.Cfg.Snapshots.Times), key)
	if err != nil {
		return
	}

	// axes
	s := fig.Splot(io.Sf("t=%g", t), "")
	s.Xlbl, s.Ylbl = "x", "U(x, t)"
	s.Yrange = env.Cfg.Snapshots.Yrange
	env.analytical(s, tabs[0].Col(dat.ColX), tabs[0].Col(dat.AnaColumn(t)))
	err = plotNumerical(env, s, cfgs, tabs, t)
	if err != nil {
		return
	}
	return env.Out.Save(fig)
}

// newCell adds the subplot of checkpoint time t
func newCell(env *Env, fig *out.Figure, t float64) *out.SplotDat {
	s := fig.Splot(io.Sf("t=%g", t), io.Sf("t = %g", t))
	s.Xlbl, s.Ylbl = "x", "U(x, t)"
	s.Yrange = env.Cfg.Snapshots.Yrange
	return s
}

// loadWithReference reads the reference table, which must exist, followed by the tables of all
// other configurations that exist
func loadWithReference(env *Env, ref mth.Config, schema *dat.Schema, figkey string) (cfgs []mth.Config, tabs []*dat.Table, err error) {
	reftab, err := env.load(dat.Snapshots, ref, schema)
	if err != nil {
		return nil, nil, chk.Err("analytical reference of %v: %w", ref, err)
	}
	others, othertabs, err := env.loadOthers(dat.Snapshots, &ref, schema, figkey)
	if err != nil {
		return
	}
	cfgs = append([]mth.Config{ref}, others...)
	tabs = append([]*dat.Table{reftab}, othertabs...)
	return
}

// plotNumerical adds the numerical series at time t, in declaration order
func plotNumerical(env *Env, s *out.SplotDat, cfgs []mth.Config, tabs []*dat.Table, t float64) error {
	for _, cfg := range env.Methods.Configs() {
		for k, c := range cfgs {
			if c != cfg {
				continue
			}
			enc, err := env.Styles.ForConfig(cfg)
			if err != nil {
				return err
			}
			e := s.Plot(tabs[k].Col(dat.ColX), tabs[k].Col(dat.NumColumn(t)), env.label(cfg), enc)
			e.Every = env.Cfg.Snapshots.Every
		}
	}
	return nil
}
