// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/quoteforest/base/websocket"
	"cogentcore.org/quoteforest/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "stats <ws://host:port/stats>",
		Short: "Print the frame stats served by a running forest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := websocket.Connect(ctx, args[0])
			if err != nil {
				return err
			}
			defer c.Close()
			snaps := make(chan stats.Snapshot)
			stop := make(chan struct{})
			defer close(stop)
			websocket.OnJSON(c, func(s stats.Snapshot) {
				select {
				case snaps <- s:
				case <-stop:
				}
			})
			for n := 0; count <= 0 || n < count; n++ {
				select {
				case <-ctx.Done():
					return nil
				case <-c.Done():
					return fmt.Errorf("stats: %s closed the connection", args[0])
				case s := <-snaps:
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "exit after this many snapshots; 0 prints until interrupted")
	return cmd
}
