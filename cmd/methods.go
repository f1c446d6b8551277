// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/fdlab/fdplot/sty"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the method configurations with their labels and styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		methods, styles, err := Config.Registries()
		if err != nil {
			return err
		}
		io.Pfyel("schemes\n")
		for _, s := range methods.Schemes() {
			lbl, _ := methods.Label(s)
			enc, err := styles.ForScheme(s)
			if err != nil {
				return err
			}
			io.Pf("  %-12s %-28q %s\n", s, lbl, encoding(enc))
		}
		io.Pfyel("configurations\n")
		for _, c := range methods.Configs() {
			lbl, _ := methods.ConfigLabel(c)
			enc, err := styles.ForConfig(c)
			if err != nil {
				return err
			}
			io.Pf("  %-12s %-28q %s\n", c, lbl, encoding(enc))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(methodsCmd)
}

func encoding(e sty.Encoding) string {
	return io.Sf("color=%s marker=%q line=%q width=%g size=%g", e.Color, e.Marker, e.Line, e.Width, e.Size)
}
