// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the interface for drawing an [xyz.Scene]
// into an image.
package render

import (
	"image"

	"cogentcore.org/quoteforest/xyz"
)

// Encoding is the color encoding of rendered output.
type Encoding int32

const (
	// Linear writes linear light values.
	Linear Encoding = iota

	// SRGB writes sRGB encoded values, for display.
	SRGB
)

func (e Encoding) String() string {
	switch e {
	case Linear:
		return "linear"
	case SRGB:
		return "sRGB"
	}
	return "unknown"
}

// Renderer draws scenes into an image buffer. The buffer is
// Size times PixelRatio pixels.
type Renderer interface {
	xyz.Surface

	// SetPixelRatio sets the number of buffer pixels per logical pixel.
	SetPixelRatio(ratio float32)

	PixelRatio() float32

	// SetSize sets the logical size, resizing the buffer.
	SetSize(width, height int)

	SetOutputEncoding(enc Encoding)

	OutputEncoding() Encoding

	// Render draws the scene as seen by the camera.
	Render(sc *xyz.Scene, cam *xyz.Camera)

	// Image returns the last rendered frame. It is reused by
	// subsequent renders.
	Image() *image.RGBA
}

// BufferSize returns the buffer size in pixels for the given logical
// size and pixel ratio, never less than one pixel on either axis for a
// non-empty size.
func BufferSize(width, height int, ratio float32) (int, int) {
	if ratio <= 0 {
		ratio = 1
	}
	scale := func(v int) int {
		if v <= 0 {
			return 0
		}
		return max(int(float32(v)*ratio+0.5), 1)
	}
	return scale(width), scale(height)
}
