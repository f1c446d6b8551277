// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fdlab/fdplot/dat"
	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
	"github.com/fdlab/fdplot/out"
)

// Convergence plots the maximum error against the step size h, one series per scheme, on
// log-log axes together with the theoretical reference C*h^p through the first point of the
// reference scheme
func Convergence(env *Env) (path string, err error) {

	// figure
	key := out.Key(out.Convergence, nil)
	fig := env.Out.NewFigure(key, "Maximum error against step size h", 1, 1)
	defer fig.Close()

	// data
	tab, err := dat.Load(filepath.Join(env.DirIn, dat.StepFile), dat.StepSchema(env.Methods))
	if err != nil {
		return
	}
	if tab.Nrows() == 0 {
		return "", chk.Err("%s has no rows: %w", tab.Path(), errs.ErrInsufficientData)
	}
	h := tab.Col(dat.ColH)

	// schemes
	s := fig.Splot("e-h", "")
	s.Xlbl, s.Ylbl = "h", "max |error|"
	s.Xlog, s.Ylog = true, true
	opts := env.Cfg.Convergence
	for _, scheme := range env.Methods.Schemes() {
		enc, e := env.Styles.ForScheme(scheme)
		if e != nil {
			return "", e
		}
		lbl, e := env.Methods.Label(scheme)
		if e != nil {
			return "", e
		}
		s.Plot(h, tab.Col(dat.StepColumn(mth.Config{Scheme: scheme, Solver: opts.Solver})), lbl, enc)
	}

	// reference
	eref := tab.Col(dat.StepColumn(env.Cfg.ConvergenceConfig()))
	C, err := Anchor(h, eref, opts.Order)
	if err != nil {
		return "", chk.Err("%s: %w", tab.Path(), err)
	}
	hmin, hmax := h[0], h[0]
	for _, v := range h {
		hmin, hmax = utl.Min(hmin, v), utl.Max(hmax, v)
	}
	if hmin <= 0 {
		return "", chk.Err("%s: step sizes must be positive; got h=%g: %w", tab.Path(), hmin, errs.ErrNumericAnomaly)
	}
	X := GeomSpace(hmin, hmax, opts.Npts)
	Y := make([]float64, len(X))
	for i, x := range X {
		Y[i] = C * math.Pow(x, opts.Order)
	}
	s.Plot(X, Y, io.Sf("O(h^%g)", opts.Order), env.Styles.Reference())

	return env.Out.Save(fig)
}

// Anchor returns C such that C*h[0]^order == e[0]
func Anchor(h, e []float64, order float64) (C float64, err error) {
	if len(h) == 0 || len(e) == 0 {
		return 0, chk.Err("at least one point is needed to anchor the reference curve: %w", errs.ErrInsufficientData)
	}
	if h[0] <= 0 {
		return 0, chk.Err("cannot anchor the reference curve at h=%g: %w", h[0], errs.ErrNumericAnomaly)
	}
	C = e[0] / math.Pow(h[0], order)
	if math.IsNaN(C) || math.IsInf(C, 0) || C <= 0 {
		return 0, chk.Err("reference constant C=%g from e=%g and h=%g cannot be drawn on log axes: %w",
			C, e[0], h[0], errs.ErrNumericAnomaly)
	}
	return
}

// GeomSpace returns n geometrically spaced values from a to b; a and b must be positive
func GeomSpace(a, b float64, n int) (res []float64) {
	res = utl.LinSpace(math.Log(a), math.Log(b), n)
	for i := range res {
		res[i] = math.Exp(res[i])
	}
	if n > 1 {
		res[0], res[n-1] = a, b
	}
	return
}
