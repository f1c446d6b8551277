// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/fdlab/fdplot/batch"
	"github.com/fdlab/fdplot/fig"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Draw all figures",
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	env, err := fig.NewEnv(Config)
	if err != nil {
		return err
	}
	io.Pfyel("fdplot: %s => %s (%s, %s, %d dpi)\n", Config.DirIn, Config.DirOut, Config.Backend, Config.Format, Config.Dpi)
	rep, err := batch.Run(env)
	rep.Print()
	return err
}
