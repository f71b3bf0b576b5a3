// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quoteforest shows a forest of pillars with extruded quotes
// between them.
//
//	quoteforest [run]          open the forest in a window
//	quoteforest snapshot       render frames offscreen to an image
//	quoteforest quotes         print the quotes as laid out in the forest
//	quoteforest quotes export  copy the quotes into a SQLite database
//	quoteforest stats <url>    print the frame stats of a running forest
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line, printing any error to stderr, and
// returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "quoteforest:", err)
		return 1
	}
	return 0
}
