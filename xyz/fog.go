// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
)

// FogExp2 is exponential squared fog, whose density grows
// quickly with the distance from the camera.
type FogExp2 struct {

	// Color is the color of the fog.
	Color color.RGBA

	// Density is how fast the fog thickens with distance.
	Density float32
}

// NewFogExp2 returns fog with the given 0xRRGGBB color and density.
func NewFogExp2(hex uint32, density float32) *FogExp2 {
	return &FogExp2{Color: colors.FromHex(hex), Density: density}
}

// Factor returns the fraction (0-1) of the fog color mixed into
// a surface at the given view distance.
func (fg *FogExp2) Factor(dist float32) float32 {
	if fg == nil {
		return 0
	}
	dd := fg.Density * dist
	return math32.Clamp(1-math32.Exp(-dd*dd), 0, 1)
}
