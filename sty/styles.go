// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sty implements the visual encodings of schemes and method configurations
package sty

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/image/colornames"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/mth"
)

// default tables. index i of Palette goes to scheme i; Markers and Lines go to solver j
var (
	Palette = []string{"blue", "red", "forestgreen", "darkorange", "purple", "saddlebrown"}
	Markers = []string{"o", "s", "^", "x", "+", "."}
	Lines   = []string{"-", "--", ":", "-."}
)

// Encoding holds the visual channels of one series
type Encoding struct {
	Color  string  // color name (see golang.org/x/image/colornames) or #rrggbb
	Marker string  // marker: o s ^ x + . or "" for none
	Line   string  // line style: - -- : -. or "" for none
	Width  float64 // line width in points
	Size   float64 // marker radius in points
}

// AsLine returns a copy drawn as a line only
func (o Encoding) AsLine() Encoding {
	if o.Line == "" {
		o.Line = "-"
	}
	o.Marker = ""
	return o
}

// AsMarkers returns a copy drawn as markers only
func (o Encoding) AsMarkers() Encoding {
	if o.Marker == "" {
		o.Marker = "o"
	}
	o.Line = ""
	return o
}

// Validate checks all channels
func (o Encoding) Validate() error {
	if _, err := ParseColor(o.Color); err != nil {
		return err
	}
	if o.Marker != "" && index(Markers, o.Marker) < 0 {
		return chk.Err("unknown marker %q: %w", o.Marker, errs.ErrConfiguration)
	}
	if o.Line != "" && index(Lines, o.Line) < 0 {
		return chk.Err("unknown line style %q: %w", o.Line, errs.ErrConfiguration)
	}
	if o.Marker == "" && o.Line == "" {
		return chk.Err("encoding without marker and line would be invisible: %w", errs.ErrConfiguration)
	}
	if o.Width < 0 || o.Size < 0 {
		return chk.Err("negative width or size: %w", errs.ErrConfiguration)
	}
	return nil
}

// Override replaces channels of a scheme encoding (Solver == "") or of a configuration
// encoding. Empty fields keep the current value.
type Override struct {
	Scheme string
	Solver string
	Color  string
	Marker string
	Line   string
	Width  float64
	Size   float64
}

func (o Override) apply(e Encoding) Encoding {
	if o.Color != "" {
		e.Color = o.Color
	}
	if o.Marker != "" {
		e.Marker = o.Marker
	}
	if o.Line != "" {
		e.Line = o.Line
	}
	if o.Width > 0 {
		e.Width = o.Width
	}
	if o.Size > 0 {
		e.Size = o.Size
	}
	return e
}

// Registry maps schemes and configurations to encodings. Both tables are total over the
// declared identifiers. Convergence plots key by scheme only; snapshot and error plots key
// by configuration. A configuration is expected to keep its scheme's color so that one
// color means one scheme in every figure; this is not checked.
type Registry struct {
	byScheme map[string]Encoding
	byConfig map[mth.Config]Encoding
}

// New builds the registry with default encodings and then applies the overrides
func New(methods *mth.Registry, overrides []Override) (o *Registry, err error) {
	o = &Registry{
		byScheme: make(map[string]Encoding),
		byConfig: make(map[mth.Config]Encoding),
	}
	for i, s := range methods.Schemes() {
		o.byScheme[s] = Encoding{
			Color:  Palette[i%len(Palette)],
			Marker: Markers[i%len(Markers)],
			Line:   "-",
			Width:  1.5,
			Size:   2.5,
		}
		for j, v := range methods.Solvers() {
			o.byConfig[mth.Config{Scheme: s, Solver: v}] = Encoding{
				Color:  Palette[i%len(Palette)],
				Marker: Markers[j%len(Markers)],
				Line:   Lines[j%len(Lines)],
				Width:  1.5,
				Size:   2,
			}
		}
	}
	for _, ov := range overrides {
		if !methods.IsScheme(ov.Scheme) {
			return nil, chk.Err("style override for unknown scheme %q: %w", ov.Scheme, errs.ErrConfiguration)
		}
		if ov.Solver == "" {
			o.byScheme[ov.Scheme] = ov.apply(o.byScheme[ov.Scheme])
			continue
		}
		cfg := mth.Config{Scheme: ov.Scheme, Solver: ov.Solver}
		if err = methods.Check(cfg); err != nil {
			return nil, chk.Err("style override: %w", err)
		}
		o.byConfig[cfg] = ov.apply(o.byConfig[cfg])
	}
	for s, e := range o.byScheme {
		if err = e.Validate(); err != nil {
			return nil, chk.Err("style of scheme %q: %w", s, err)
		}
	}
	for c, e := range o.byConfig {
		if err = e.Validate(); err != nil {
			return nil, chk.Err("style of %v: %w", c, err)
		}
	}
	return
}

// ForScheme returns the encoding of a scheme
func (o *Registry) ForScheme(scheme string) (Encoding, error) {
	if e, ok := o.byScheme[scheme]; ok {
		return e, nil
	}
	return Encoding{}, chk.Err("no style for scheme %q: %w", scheme, errs.ErrConfiguration)
}

// ForConfig returns the encoding of a configuration
func (o *Registry) ForConfig(cfg mth.Config) (Encoding, error) {
	if e, ok := o.byConfig[cfg]; ok {
		return e, nil
	}
	return Encoding{}, chk.Err("no style for %v: %w", cfg, errs.ErrConfiguration)
}

// Reference returns the encoding of theoretical reference curves
func (o *Registry) Reference() Encoding {
	return Encoding{Color: "gray", Line: "--", Width: 1.5}
}

// Analytical returns the encoding of the analytical solution: a solid line, or markers
// when the curve is subsampled
func (o *Registry) Analytical(sparse bool) Encoding {
	if sparse {
		return Encoding{Color: "black", Marker: "+", Size: 3}
	}
	return Encoding{Color: "black", Line: "-", Width: 2.5}
}

// ParseColor returns the RGBA components of a color name or #rrggbb string
func ParseColor(c string) (rgba [4]uint8, err error) {
	if strings.HasPrefix(c, "#") && len(c) == 7 {
		v, e := strconv.ParseUint(c[1:], 16, 32)
		if e == nil {
			return [4]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
		}
	}
	if col, ok := colornames.Map[strings.ToLower(c)]; ok {
		return [4]uint8{col.R, col.G, col.B, col.A}, nil
	}
	return rgba, chk.Err("unknown color %q: %w", c, errs.ErrConfiguration)
}

func index(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
