// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/xyz"
)

// lighting is the per-frame light setup of a scene.
type lighting struct {
	ambient colors.Linear
	points  []pointLight
	fog     *xyz.FogExp2
	fogCol  colors.Linear
}

type pointLight struct {
	light    *xyz.PointLight
	radiance colors.Linear
}

func newLighting(sc *xyz.Scene) *lighting {
	lt := &lighting{fog: sc.Fog}
	if sc.Fog != nil {
		lt.fogCol = colors.ToLinear(sc.Fog.Color)
	}
	for _, l := range sc.Lights {
		switch l := l.(type) {
		case *xyz.AmbientLight:
			lt.ambient = lt.ambient.Add(l.Radiance())
		case *xyz.PointLight:
			if !l.On {
				continue
			}
			lt.points = append(lt.points, pointLight{light: l, radiance: l.Radiance()})
		}
	}
	return lt
}

// shade returns the lit color of a surface point with the given world
// position and unit normal, seen at the given view depth.
func (lt *lighting) shade(albedo, emissive colors.Linear, pos, norm math32.Vector3, depth float32) colors.Linear {
	irr := lt.ambient
	for _, p := range lt.points {
		l := p.light.Pos.Sub(pos)
		d := l.Length()
		if d == 0 {
			continue
		}
		ndl := norm.Dot(l.DivScalar(d))
		if ndl <= 0 {
			continue
		}
		att := p.light.Attenuation(d)
		if att <= 0 {
			continue
		}
		irr = irr.Add(p.radiance.Scale(ndl * att))
	}
	c := albedo.Mul(irr).Add(emissive)
	if f := lt.fog.Factor(depth); f > 0 {
		c = c.Lerp(lt.fogCol, f)
	}
	return c
}

// srgbTable maps linear values in [0,1], quantized to 4096 steps,
// to 8-bit sRGB.
var srgbTable = func() (t [4097]uint8) {
	for i := range t {
		t[i] = uint8(colors.LinearToSRGBComp(float32(i)/4096)*255 + 0.5)
	}
	return
}()

func encodeSRGB(v float32) uint8 {
	return srgbTable[int(math32.Clamp(v, 0, 1)*4096+0.5)]
}

func encodeLinear(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}
