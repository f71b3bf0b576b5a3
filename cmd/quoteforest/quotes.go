// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/quoteforest/quotes"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newQuotesCmd(g *globals) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Print the quotes as they are laid out in the forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := quotes.Load(cmd.Context(), cfg.CorpusPath)
			if err != nil {
				return err
			}
			if !flat {
				c = quotes.StackVertically(c)
			}
			return printQuotes(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "print each quote on one line")

	export := &cobra.Command{
		Use:   "export <file.db>",
		Short: "Write the quotes into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := quotes.Load(cmd.Context(), cfg.CorpusPath)
			if err != nil {
				return err
			}
			if err := quotes.WriteSQLite(cmd.Context(), args[0], c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d quotes to %s\n", len(c), args[0])
			return nil
		},
	}
	cmd.AddCommand(export)
	return cmd
}

// printQuotes writes each quote followed by its faint author.
func printQuotes(w io.Writer, c quotes.Corpus) error {
	out := termenv.NewOutput(w)
	for i, q := range c {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintln(w, q.Text); err != nil {
			return err
		}
		if q.Author != "" {
			fmt.Fprintln(w, out.String("  - "+q.Author).Faint())
		}
	}
	return nil
}
