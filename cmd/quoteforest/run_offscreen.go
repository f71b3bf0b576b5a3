// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build android || ios || js || offscreen

package main

import "github.com/spf13/cobra"

// addRunCmd adds nothing on platforms without a desktop window.
func addRunCmd(root *cobra.Command, g *globals) {}
