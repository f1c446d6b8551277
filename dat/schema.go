// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/mth"
)

// Type restricts the values of a column
type Type int

// column types
const (
	Real        Type = iota // any finite number
	NonNegative             // finite and >= 0; e.g. step sizes, times and errors
)

// Column describes one column of a table
type Column struct {
	Name string // column name
	Type Type   // value restriction
}

// Schema is the ordered list of columns of a table kind
type Schema struct {
	Kind    string   // table kind; e.g. "error_vs_h"
	Columns []Column // ordered columns
}

// Index returns the position of a column or -1
func (o *Schema) Index(name string) int {
	for i, c := range o.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names
func (o *Schema) Names() (names []string) {
	names = make([]string, len(o.Columns))
	for i, c := range o.Columns {
		names[i] = c.Name
	}
	return
}

// column names shared by schemas
const (
	ColH      = "h"      // mesh step size
	ColX      = "x"      // spatial coordinate
	ColT      = "t"      // time
	ColMaxErr = "maxerr" // maximum absolute error
)

// StepColumn returns the name of the error column of cfg in the step-convergence table
func StepColumn(cfg mth.Config) string {
	return "err_" + cfg.Key()
}

// NumColumn returns the name of the numerical column at checkpoint time t
func NumColumn(t float64) string {
	return io.Sf("num(t=%g)", t)
}

// AnaColumn returns the name of the analytical column at checkpoint time t
func AnaColumn(t float64) string {
	return io.Sf("ana(t=%g)", t)
}

// StepSchema returns the schema of the step-convergence table: h followed by one error
// column per configuration in scheme-major order
func StepSchema(methods *mth.Registry) *Schema {
	o := &Schema{Kind: KindStep, Columns: []Column{{ColH, NonNegative}}}
	for _, cfg := range methods.Configs() {
		o.Columns = append(o.Columns, Column{StepColumn(cfg), NonNegative})
	}
	return o
}

// SnapshotSchema returns the schema of the snapshot table: x followed by the pair
// (numerical, analytical) for each checkpoint time
func SnapshotSchema(times []float64) *Schema {
	o := &Schema{Kind: string(Snapshots), Columns: []Column{{ColX, Real}}}
	for _, t := range times {
		o.Columns = append(o.Columns, Column{NumColumn(t), Real}, Column{AnaColumn(t), Real})
	}
	return o
}

// TimeErrorSchema returns the schema of the time-error table
func TimeErrorSchema() *Schema {
	return &Schema{Kind: string(TimeError), Columns: []Column{{ColT, NonNegative}, {ColMaxErr, NonNegative}}}
}
