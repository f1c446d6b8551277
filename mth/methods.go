// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mth implements the registry of numerical method configurations: time-stepping
// schemes crossed with linear solvers
package mth

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/fdlab/fdplot/errs"
)

// Ident holds an identifier and its display label
type Ident struct {
	Id    string // identifier used in file names; e.g. "CN"
	Label string // human-readable label; e.g. "Crank-Nicolson"
}

// Config is one (scheme, solver) pair under comparison
type Config struct {
	Scheme string // time-stepping scheme; e.g. "Laasonen"
	Solver string // linear solver; e.g. "Thomas"
}

// Key returns the "scheme_solver" key used in file names
func (o Config) Key() string {
	return o.Scheme + "_" + o.Solver
}

// String returns the key
func (o Config) String() string {
	return o.Key()
}

// Registry holds the declared schemes and solvers. It is immutable after New.
type Registry struct {
	schemes []string          // ordered scheme ids
	solvers []string          // ordered solver ids
	labels  map[string]string // id => label (schemes and solvers share this namespace)
}

// New builds a registry. Ids must be non-empty, unique among schemes and solvers and
// usable in file names. An empty label defaults to the id.
func New(schemes, solvers []Ident) (o *Registry, err error) {
	if len(schemes) == 0 {
		return nil, chk.Err("at least one scheme must be declared: %w", errs.ErrConfiguration)
	}
	if len(solvers) == 0 {
		return nil, chk.Err("at least one solver must be declared: %w", errs.ErrConfiguration)
	}
	o = &Registry{labels: make(map[string]string)}
	add := func(kind string, ids []Ident) ([]string, error) {
		res := make([]string, 0, len(ids))
		for _, d := range ids {
			if d.Id == "" || strings.ContainsAny(d.Id, " \t\n/\\") {
				return nil, chk.Err("%s id %q cannot be used in file names: %w", kind, d.Id, errs.ErrConfiguration)
			}
			if _, dup := o.labels[d.Id]; dup {
				return nil, chk.Err("%s id %q is declared twice: %w", kind, d.Id, errs.ErrConfiguration)
			}
			lbl := d.Label
			if lbl == "" {
				lbl = d.Id
			}
			o.labels[d.Id] = lbl
			res = append(res, d.Id)
		}
		return res, nil
	}
	if o.schemes, err = add("scheme", schemes); err != nil {
		return nil, err
	}
	if o.solvers, err = add("solver", solvers); err != nil {
		return nil, err
	}
	return
}

// Schemes returns the scheme ids in declaration order
func (o *Registry) Schemes() []string {
	return append([]string{}, o.schemes...)
}

// Solvers returns the solver ids in declaration order
func (o *Registry) Solvers() []string {
	return append([]string{}, o.solvers...)
}

// Configs returns the cross product of schemes and solvers, scheme-major
func (o *Registry) Configs() (res []Config) {
	res = make([]Config, 0, len(o.schemes)*len(o.solvers))
	for _, s := range o.schemes {
		for _, v := range o.solvers {
			res = append(res, Config{Scheme: s, Solver: v})
		}
	}
	return
}

// IsScheme tells whether id is a declared scheme
func (o *Registry) IsScheme(id string) bool {
	return index(o.schemes, id) >= 0
}

// IsSolver tells whether id is a declared solver
func (o *Registry) IsSolver(id string) bool {
	return index(o.solvers, id) >= 0
}

// Has tells whether cfg belongs to the declared cross product
func (o *Registry) Has(cfg Config) bool {
	return o.IsScheme(cfg.Scheme) && o.IsSolver(cfg.Solver)
}

// Check returns a configuration error if cfg is not declared
func (o *Registry) Check(cfg Config) error {
	if !o.IsScheme(cfg.Scheme) {
		return chk.Err("unknown scheme %q: %w", cfg.Scheme, errs.ErrConfiguration)
	}
	if !o.IsSolver(cfg.Solver) {
		return chk.Err("unknown solver %q: %w", cfg.Solver, errs.ErrConfiguration)
	}
	return nil
}

// Label returns the display label of a scheme or solver id
func (o *Registry) Label(id string) (string, error) {
	if lbl, ok := o.labels[id]; ok {
		return lbl, nil
	}
	return "", chk.Err("unknown identifier %q: %w", id, errs.ErrConfiguration)
}

// ConfigLabel returns "<scheme label> + <solver label>"
func (o *Registry) ConfigLabel(cfg Config) (string, error) {
	if err := o.Check(cfg); err != nil {
		return "", err
	}
	return o.labels[cfg.Scheme] + " + " + o.labels[cfg.Solver], nil
}

func index(ids []string, id string) int {
	for i, s := range ids {
		if s == id {
			return i
		}
	}
	return -1
}
