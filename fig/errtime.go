// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/dat"
	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/inp"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/out"
)

// ErrorTime plots the maximum error of one configuration against time. Rows are drawn in file
// order.
func ErrorTime(env *Env, cfg mth.Config) (path string, err error) {
	if err = env.Methods.Check(cfg); err != nil {
		return
	}
	enc, err := env.Styles.ForConfig(cfg)
	if err != nil {
		return
	}

	// figure
	key := out.Key(out.ErrorTime, &cfg)
	fig := env.Out.NewFigure(key, io.Sf("Maximum error against time (%s)", env.label(cfg)), 1, 1)
	defer fig.Close()

	// data
	tab, err := env.load(dat.TimeError, cfg, dat.TimeErrorSchema())
	if err != nil {
		return
	}

	// axes
	s := fig.Splot("e-t", "")
	s.Xlbl, s.Ylbl = "t", "max |error|"
	s.Ylog = env.Cfg.Errors.Yscale == inp.Log
	s.Plot(tab.Col(dat.ColT), tab.Col(dat.ColMaxErr), env.label(cfg), enc.AsLine())
	return env.Out.Save(fig)
}

// ErrorTimeAll overlays the maximum error of all configurations. Missing configurations are
// omitted; at least one must be present.
func ErrorTimeAll(env *Env) (path string, err error) {

	// figure
	key := out.Key(out.ErrorTime, nil, "comparison")
	fig := env.Out.NewFigure(key, "Maximum error against time: all methods", 1, 1)
	defer fig.Close()

	// data
	cfgs, tabs, err := env.loadOthers(dat.TimeError, nil, dat.TimeErrorSchema(), key)
	if err != nil {
		return
	}
	if len(cfgs) == 0 {
		return "", chk.Err("no %s table found in %s: %w", dat.TimeError, env.DirIn, errs.ErrMissingInput)
	}

	// axes
	s := fig.Splot("e-t", "")
	s.Xlbl, s.Ylbl = "t", "max |error|"
	s.Ylog = env.Cfg.Errors.CompareYscale == inp.Log
	for k, cfg := range cfgs {
		enc, e := env.Styles.ForConfig(cfg)
		if e != nil {
			return "", e
		}
		s.Plot(tabs[k].Col(dat.ColT), tabs[k].Col(dat.ColMaxErr), env.label(cfg), enc.AsLine())
	}
	return env.Out.Save(fig)
}
