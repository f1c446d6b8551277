// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fdlab/fdplot/inp"
)

var (
	cfgFile string      // --config
	Config  *inp.Config // settings after flags, environment and file were merged
)

// RootCmd runs the whole batch when no subcommand is given
var RootCmd = &cobra.Command{
	Use:   "fdplot",
	Short: "Comparative figures of finite-difference results",
	Long: `fdplot reads the result tables of a finite-difference solver (error_vs_h.dat,
solution_snapshots_<scheme>_<solver>.dat and error_vs_time_<scheme>_<solver>.dat) and
draws convergence, solution and error figures comparing all method configurations.

Settings come from flags, FDPLOT_* environment variables and fdplot.yaml, in this order.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runBatch,
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	f := RootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ./fdplot.yaml)")
	f.String("dirin", ".", "directory with .dat files")
	f.String("dirout", "figures", "directory for figures")
	f.String("backend", "gonum", "renderer: gonum or matplotlib")
	f.String("format", "png", "image format: png, svg, pdf, eps, jpg or tiff")
	f.Int("dpi", 300, "resolution of raster images")
	f.Bool("quiet", false, "no console output")
}

// loadConfig merges flags, environment and configuration file into Config
func loadConfig(cmd *cobra.Command, args []string) (err error) {
	v := inp.NewViper(cfgFile)
	if err = bindFlags(v, cmd); err != nil {
		return
	}
	Config, err = inp.ReadConfig(v, cfgFile != "")
	if err != nil {
		return
	}
	io.Verbose = !Config.Quiet
	if used := v.ConfigFileUsed(); used != "" {
		io.Pf("using config file: %s\n", used)
	}
	return
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, key := range []string{"dirin", "dirout", "backend", "format", "dpi", "quiet"} {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}
