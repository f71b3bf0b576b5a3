// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/quoteforest/colors"
)

// Material describes the material properties of a surface
// for Lambertian (diffuse) lighting.
// Color is the diffuse color, and the Emissive color is only for glowing objects.
type Material struct {

	// Color is the main color of surface, used for diffuse reflection
	// of both ambient and point lights.
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow
	Emissive color.RGBA

	// FlatShading uses one normal per triangle instead of the
	// interpolated vertex normals.
	FlatShading bool

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{}
	mt.CullBack = true
}

// NewMaterial returns a default material with the given 0xRRGGBB color.
func NewMaterial(hex uint32) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = colors.FromHex(hex)
	return mt
}
