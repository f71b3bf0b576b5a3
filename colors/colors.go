// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color constructors and the sRGB / linear
// conversions used by lighting.
package colors

import (
	"image/color"

	"cogentcore.org/quoteforest/math32"
)

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromHex returns the opaque color for the given 0xRRGGBB value,
// as written in scene descriptions (e.g. 0xcccccc).
func FromHex(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}

// ToHex returns the 0xRRGGBB value of the given color, ignoring alpha.
func ToHex(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Linear is a color in linear light space with float32 components in 0-1.
type Linear struct {
	R, G, B float32
}

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// LinearToSRGBComp converts a linear rgb component to sRGB space (adds gamma).
// Used in converting from XYZ to sRGB.
func LinearToSRGBComp(lin float32) float32 {
	var gv float32
	if lin <= 0.0031308 {
		gv = 12.92 * lin
	} else {
		gv = (1.055*math32.Pow(lin, 1.0/2.4) - 0.055)
	}
	return math32.Clamp(gv, 0, 1)
}

// ToLinear returns the linear light value of the given sRGB color.
func ToLinear(c color.RGBA) Linear {
	return Linear{
		R: SRGBToLinearComp(float32(c.R) / 255),
		G: SRGBToLinearComp(float32(c.G) / 255),
		B: SRGBToLinearComp(float32(c.B) / 255),
	}
}

// SRGB returns the opaque sRGB encoding of the linear color,
// clamping components to 0-1.
func (l Linear) SRGB() color.RGBA {
	return color.RGBA{
		R: uint8(LinearToSRGBComp(l.R)*255 + 0.5),
		G: uint8(LinearToSRGBComp(l.G)*255 + 0.5),
		B: uint8(LinearToSRGBComp(l.B)*255 + 0.5),
		A: 255,
	}
}

// Add returns the component-wise sum of the colors.
func (l Linear) Add(o Linear) Linear {
	return Linear{l.R + o.R, l.G + o.G, l.B + o.B}
}

// Mul returns the component-wise product of the colors.
func (l Linear) Mul(o Linear) Linear {
	return Linear{l.R * o.R, l.G * o.G, l.B * o.B}
}

// Scale returns the color multiplied by s.
func (l Linear) Scale(s float32) Linear {
	return Linear{l.R * s, l.G * s, l.B * s}
}

// Lerp returns the linear interpolation from l to o by t.
func (l Linear) Lerp(o Linear, t float32) Linear {
	return Linear{
		R: math32.Lerp(l.R, o.R, t),
		G: math32.Lerp(l.G, o.G, t),
		B: math32.Lerp(l.B, o.B, t),
	}
}
