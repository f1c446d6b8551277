// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements figure output: file naming, resolution, layouts and renderers
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"

	"github.com/fdlab/fdplot/errs"
)

// Options holds output settings
type Options struct {
	DirOut     string  // directory to save figures
	Format     string  // file format; e.g. "png", "svg", "pdf"
	Dpi        int     // resolution of raster formats
	Width      float64 // single-axes figure width in inches
	Height     float64 // single-axes figure height in inches
	GridWidth  float64 // width of figures with more than one subplot
	GridHeight float64 // height of figures with more than one subplot
}

// Renderer draws a figure and writes it to path
type Renderer interface {
	Name() string                                        // backend name
	Supports(format string) bool                         // tells whether format can be written
	Render(fig *Figure, opts *Options, path string) error // draws and writes
	Release(fig *Figure)                                 // frees drawing resources of fig
}

// NewRenderer returns the renderer with the given name: "gonum" or "matplotlib"
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case "gonum", "":
		return Gonum{}, nil
	case "matplotlib":
		return Matplotlib{}, nil
	}
	return nil, chk.Err("unknown backend %q; use gonum or matplotlib: %w", name, errs.ErrConfiguration)
}

// Manager creates, saves and releases figures
type Manager struct {
	opts  Options  // output settings
	rnd   Renderer // backend
	nopen int      // number of acquired but unreleased figures
}

// NewManager validates the options and returns a manager
func NewManager(opts Options, rnd Renderer) (o *Manager, err error) {
	if opts.DirOut == "" {
		return nil, chk.Err("output directory must be given: %w", errs.ErrConfiguration)
	}
	if opts.Dpi <= 0 {
		return nil, chk.Err("dpi must be positive; got %d: %w", opts.Dpi, errs.ErrConfiguration)
	}
	if opts.Width <= 0 || opts.Height <= 0 || opts.GridWidth <= 0 || opts.GridHeight <= 0 {
		return nil, chk.Err("figure sizes must be positive; got %gx%g and %gx%g: %w",
			opts.Width, opts.Height, opts.GridWidth, opts.GridHeight, errs.ErrConfiguration)
	}
	if rnd == nil {
		return nil, chk.Err("renderer must be given: %w", errs.ErrConfiguration)
	}
	if !rnd.Supports(opts.Format) {
		return nil, chk.Err("backend %q cannot write %q files: %w", rnd.Name(), opts.Format, errs.ErrConfiguration)
	}
	return &Manager{opts: opts, rnd: rnd}, nil
}

// Options returns a copy of the output settings
func (o *Manager) Options() Options { return o.opts }

// Renderer returns the backend
func (o *Manager) Renderer() Renderer { return o.rnd }

// Open returns the number of figures acquired and not yet closed
func (o *Manager) Open() int { return o.nopen }

// Path returns the file path of a figure key
func (o *Manager) Path(key string) string {
	return filepath.Join(o.opts.DirOut, key+"."+o.opts.Format)
}

// NewFigure acquires a figure with a nrow x ncol grid of subplots. Grids with more than one
// cell use the grid size.
func (o *Manager) NewFigure(key, title string, nrow, ncol int) *Figure {
	if nrow < 1 || ncol < 1 {
		chk.Panic("figure %q: grid must have at least one cell; got %dx%d", key, nrow, ncol)
	}
	w, h := o.opts.Width, o.opts.Height
	if nrow*ncol > 1 {
		w, h = o.opts.GridWidth, o.opts.GridHeight
	}
	o.nopen++
	return &Figure{Key: key, Title: title, Nrow: nrow, Ncol: ncol, Width: w, Height: h, mgr: o}
}

// Save renders fig and writes it, overwriting any previous artifact with the same key
func (o *Manager) Save(fig *Figure) (path string, err error) {
	if fig.closed {
		chk.Panic("figure %q was closed before saving", fig.Key)
	}
	if len(fig.Splots) == 0 {
		return "", chk.Err("figure %q has no subplots", fig.Key)
	}
	err = os.MkdirAll(o.opts.DirOut, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for figures (%s): %v", o.opts.DirOut, err)
	}
	path = o.Path(fig.Key)
	err = o.rnd.Render(fig, &o.opts, path)
	if err != nil {
		return "", err
	}
	return
}

func (o *Manager) release(fig *Figure) {
	o.rnd.Release(fig)
	o.nopen--
}
