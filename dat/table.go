// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dat implements loading of result tables written by the solver
package dat

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/fdlab/fdplot/errs"
)

// maxLineSize is the longest line Load accepts
const maxLineSize = 64 << 20

// Table holds the columns of a loaded file. It is not modified after Load.
type Table struct {
	path   string      // file the table was read from
	schema *Schema     // column descriptors
	cols   [][]float64 // [ncol][nrow] values
}

// Load reads a table. The file must have exactly one header line followed by rows of
// whitespace-separated numbers matching the schema. An absent file yields
// errs.ErrMissingInput; any content problem yields errs.ErrMalformedInput.
func Load(path string, schema *Schema) (o *Table, err error) {

	// check existence first
	if !Exists(path) {
		return nil, chk.Err("%s: %w", path, errs.ErrMissingInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open %s: %v: %w", path, err, errs.ErrMissingInput)
	}
	defer f.Close()

	ncol := len(schema.Columns)
	o = &Table{path: path, schema: schema, cols: make([][]float64, ncol)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lnum := 0
	for scanner.Scan() {
		lnum++
		if lnum == 1 {
			continue // header
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != ncol {
			return nil, chk.Err("%s:%d: found %d columns but %q tables have %d (%s): %w",
				path, lnum, len(fields), schema.Kind, ncol, strings.Join(schema.Names(), " "), errs.ErrMalformedInput)
		}
		for j, s := range fields {
			v, e := strconv.ParseFloat(s, 64)
			if e != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, chk.Err("%s:%d: column %q: %q is not a finite number: %w",
					path, lnum, schema.Columns[j].Name, s, errs.ErrMalformedInput)
			}
			if schema.Columns[j].Type == NonNegative && v < 0 {
				return nil, chk.Err("%s:%d: column %q must not be negative; got %g: %w",
					path, lnum, schema.Columns[j].Name, v, errs.ErrMalformedInput)
			}
			o.cols[j] = append(o.cols[j], v)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, chk.Err("cannot read %s: %v: %w", path, err, errs.ErrMalformedInput)
	}
	if lnum == 0 {
		return nil, chk.Err("%s is empty; a header line is required: %w", path, errs.ErrMalformedInput)
	}
	return
}

// Exists tells whether path is an existing regular file
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// Path returns the file the table was read from
func (o *Table) Path() string { return o.path }

// Schema returns the column descriptors
func (o *Table) Schema() *Schema { return o.schema }

// Nrows returns the number of rows
func (o *Table) Nrows() int {
	if len(o.cols) == 0 {
		return 0
	}
	return len(o.cols[0])
}

// Col returns a copy of the named column. Asking for a column the schema does not have is
// a programming error.
func (o *Table) Col(name string) []float64 {
	j := o.schema.Index(name)
	if j < 0 {
		chk.Panic("table %q has no column %q. columns = %v", o.schema.Kind, name, o.schema.Names())
	}
	return append([]float64{}, o.cols[j]...)
}

// Row returns a copy of row i
func (o *Table) Row(i int) []float64 {
	row := make([]float64, len(o.cols))
	for j := range o.cols {
		row[j] = o.cols[j][i]
	}
	return row
}
