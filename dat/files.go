// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"path/filepath"

	"github.com/fdlab/fdplot/mth"
)

// Kind names a per-configuration table kind
type Kind string

// table kinds
const (
	Snapshots Kind = "solution_snapshots" // snapshot table
	TimeError Kind = "error_vs_time"      // time-error table

	KindStep = "error_vs_h"      // step-convergence table (configuration independent)
	StepFile = KindStep + ".dat" // file name of the step-convergence table
)

// File returns the file name of a per-configuration table; e.g. error_vs_time_CN_Thomas.dat
func File(kind Kind, cfg mth.Config) string {
	return string(kind) + "_" + cfg.Key() + ".dat"
}

// Input describes one expected input file
type Input struct {
	Path    string      // full path
	Kind    string      // table kind
	Config  *mth.Config // configuration; nil for the step-convergence table
	Present bool        // file exists
}

// Expected lists every file a batch may read from dir: the step-convergence table followed by
// the snapshot and time-error tables of each configuration
func Expected(dir string, methods *mth.Registry) (res []Input) {
	p := filepath.Join(dir, StepFile)
	res = append(res, Input{Path: p, Kind: KindStep, Present: Exists(p)})
	for _, kind := range []Kind{Snapshots, TimeError} {
		for _, cfg := range methods.Configs() {
			c := cfg
			p = filepath.Join(dir, File(kind, c))
			res = append(res, Input{Path: p, Kind: string(kind), Config: &c, Present: Exists(p)})
		}
	}
	return
}
