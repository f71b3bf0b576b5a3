// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/quoteforest/forest"
	"cogentcore.org/quoteforest/logx"
	"github.com/spf13/cobra"
)

// globals are the flags shared by all commands.
type globals struct {
	preset  string
	config  string
	seed    int64
	verbose bool
	quiet   bool
}

// loadConfig returns the preset with the config file read on top of it
// and the flags applied.
func (g *globals) loadConfig(cmd *cobra.Command) (*forest.Config, error) {
	cfg, err := forest.OpenConfig(g.preset, g.config)
	if err != nil {
		return nil, err
	}
	if cmd.Root().PersistentFlags().Changed("seed") {
		cfg.Seed = g.seed
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "quoteforest",
		Short:         "A forest of pillars and extruded quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.Init(cmd.ErrOrStderr())
			switch {
			case g.verbose:
				logx.SetLevel(slog.LevelDebug)
			case g.quiet:
				logx.SetLevel(slog.LevelError)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.preset, "preset", "quotes", "named variant of the forest: quotes or markers")
	pf.StringVarP(&g.config, "config", "c", "", "TOML config file read on top of the preset")
	pf.Int64Var(&g.seed, "seed", 0, "seed for random placement, 0 for a random forest")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug messages")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newSnapshotCmd(g), newQuotesCmd(g), newStatsCmd())
	addRunCmd(root, g)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if run, _, err := root.Find([]string{"run"}); err == nil && run != root {
			run.SetContext(cmd.Context())
			return run.RunE(run, args)
		}
		return cmd.Help()
	}
	return root
}
