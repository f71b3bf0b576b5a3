// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package main

import (
	"context"

	"cogentcore.org/quoteforest/driver/desktop"
	"cogentcore.org/quoteforest/forest"
	"cogentcore.org/quoteforest/stats/statsws"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type runOptions struct {
	width     int
	height    int
	watch     bool
	statsAddr string
	showStats bool
}

func addRunCmd(root *cobra.Command, g *globals) {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the forest in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWindow(cmd.Context(), cfg, g, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.width, "width", 800, "initial window width")
	f.IntVar(&o.height, "height", 600, "initial window height")
	f.BoolVar(&o.watch, "watch", false, "apply changes to the atmosphere of the config file while running")
	f.StringVar(&o.statsAddr, "stats-addr", "", "serve frame stats to websocket clients on this address")
	f.BoolVar(&o.showStats, "stats", false, "show frame stats in the window")
	root.AddCommand(cmd)
}

// runWindow runs the forest in a window, and the stats server if
// requested, until the window is closed.
func runWindow(ctx context.Context, cfg *forest.Config, g *globals, o *runOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := desktop.New("Quote Forest", o.width, o.height)
	app.ShowStats = o.showStats
	st, err := forest.New(app, app, app, cfg)
	if err != nil {
		return err
	}
	app.Controls = st.Controls
	if o.watch && g.config != "" {
		if err := st.Watch(ctx, g.preset, g.config); err != nil {
			return err
		}
	}

	eg, ectx := errgroup.WithContext(ctx)
	if o.statsAddr != "" {
		eg.Go(func() error {
			return statsws.ListenAndServe(ectx, o.statsAddr, st.Stats)
		})
	}
	st.Generate(ctx)
	// the window must run on the main goroutine
	werr := app.Run(ectx)
	cancel()
	if err := eg.Wait(); err != nil {
		return err
	}
	return werr
}
