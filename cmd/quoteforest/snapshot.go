// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/quoteforest/base/iox/imagex"
	"cogentcore.org/quoteforest/driver/headless"
	"cogentcore.org/quoteforest/forest"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type snapshotOptions struct {
	out     string
	width   int
	height  int
	ratio   float32
	frames  int
	timeout time.Duration
}

func newSnapshotCmd(g *globals) *cobra.Command {
	o := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the settled forest offscreen and save it as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			return snapshot(cmd.Context(), cfg, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.out, "out", "o", "forest.png", "image file; the extension selects the format")
	f.IntVar(&o.width, "width", 800, "image width in logical pixels")
	f.IntVar(&o.height, "height", 600, "image height in logical pixels")
	f.Float32Var(&o.ratio, "pixel-ratio", 1, "image pixels per logical pixel")
	f.IntVar(&o.frames, "frames", 1, "frames to render after the text has settled")
	f.DurationVar(&o.timeout, "timeout", time.Minute, "how long to wait for the font")
	return cmd
}

// snapshot generates the forest on a headless host, steps it past the
// settle delay and saves the last frame. A font that cannot be loaded
// only leaves the text out.
func snapshot(ctx context.Context, cfg *forest.Config, o *snapshotOptions) error {
	if o.frames < 1 {
		return fmt.Errorf("snapshot: frames must be at least 1, not %d", o.frames)
	}
	app := headless.New(o.width, o.height)
	app.SetPixelRatio(o.ratio)
	st, err := forest.New(app, app, app, cfg)
	if err != nil {
		return err
	}
	gen := st.Generate(ctx)

	wctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	if err := app.WaitFor(wctx, gen.Done()); err != nil {
		return fmt.Errorf("snapshot: waiting for the font: %w", err)
	}
	if err := gen.Err(); err != nil {
		slog.Warn("snapshot: rendering without text", "err", err)
	}

	// skip over the settle delay in one frame
	frame := app.FrameInterval
	app.FrameInterval = max(time.Duration(float64(cfg.PositionDelay)*float64(time.Second)), frame)
	for !closed(gen.Positioned()) {
		app.Step()
	}
	app.FrameInterval = frame

	for range o.frames {
		app.Step()
	}
	img := st.Renderer.Image()
	if err := imagex.Save(img, o.out); err != nil {
		return err
	}
	b := img.Bounds()
	slog.Info("snapshot saved", "file", o.out, "size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"frames", humanize.Comma(int64(st.Frames())), "stats", st.Stats.String())
	return nil
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
