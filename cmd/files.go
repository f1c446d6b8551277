// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/fdlab/fdplot/dat"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the input tables and whether they exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		methods, _, err := Config.Registries()
		if err != nil {
			return err
		}
		nmissing := 0
		for _, in := range dat.Expected(Config.DirIn, methods) {
			if in.Present {
				io.Pfgreen("  present  %s\n", in.Path)
				continue
			}
			nmissing++
			io.Pforan("  missing  %s\n", in.Path)
		}
		io.Pf("%d missing\n", nmissing)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(filesCmd)
}
