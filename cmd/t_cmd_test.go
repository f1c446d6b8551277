// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/errs"
)

func init() {
	io.Verbose = false
}

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01. flags over defaults")

	RootCmd.SetArgs([]string{"methods", "--dirin", "../examples/heat1d", "--dpi", "72", "--backend", "gonum", "--quiet"})
	err := Execute()
	if err != nil {
		tst.Fatalf("methods failed: %v", err)
	}
	chk.String(tst, Config.DirIn, "../examples/heat1d")
	chk.String(tst, Config.DirOut, "figures")
	if Config.Dpi != 72 {
		tst.Errorf("dpi should be 72; got %d", Config.Dpi)
	}

	RootCmd.SetArgs([]string{"files", "--dirin", "../examples/heat1d", "--backend", "gonum", "--quiet"})
	err = Execute()
	if err != nil {
		tst.Errorf("files failed: %v", err)
	}
}

func Test_cmd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd02. run and configuration errors")

	dirout := tst.TempDir()
	fn := filepath.Join(tst.TempDir(), "fdplot.yaml")
	io.WriteFileD(filepath.Dir(fn), filepath.Base(fn), bytes.NewBufferString("snapshots:\n  compareat: -1\nformat: svg\n"))

	RootCmd.SetArgs([]string{"run", "--config", fn, "--dirin", "../examples/heat1d", "--dirout", dirout, "--backend", "gonum", "--quiet"})
	err := Execute()
	if err != nil {
		tst.Fatalf("run failed: %v", err)
	}
	files, _ := filepath.Glob(filepath.Join(dirout, "*.svg"))
	if len(files) != 11 {
		tst.Errorf("11 svg files expected; got %d", len(files))
	}

	RootCmd.SetArgs([]string{"run", "--config", "", "--backend", "gnuplot", "--quiet"})
	err = Execute()
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("configuration error expected; got %v", err)
	}
}
