// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
)

// screenVert is a projected vertex: pixel position, NDC depth,
// 1/w and color divided by w.
type screenVert struct {
	x, y, z, iw float32
	col         colors.Linear
}

func project(v clipVert, bw, bh float32) screenVert {
	iw := 1 / v.w
	return screenVert{
		x:  (v.x*iw + 1) * 0.5 * bw,
		y:  (1 - v.y*iw) * 0.5 * bh,
		z:  v.z * iw,
		iw: iw,
	}
}

// screenTri is a triangle ready for rasterization, with its pixel bounds.
type screenTri struct {
	v          [3]screenVert
	invArea    float32
	minX, maxX int
	minY, maxY int
}

// newScreenTri returns false for a triangle with no area.
func newScreenTri(a, b, c screenVert, bw, bh float32) (screenTri, bool) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return screenTri{}, false
	}
	t := screenTri{v: [3]screenVert{a, b, c}, invArea: 1 / area}
	t.minX = int(math32.Max(0, math32.Floor(min(a.x, b.x, c.x))))
	t.maxX = int(math32.Min(bw-1, math32.Ceil(max(a.x, b.x, c.x))))
	t.minY = int(math32.Max(0, math32.Floor(min(a.y, b.y, c.y))))
	t.maxY = int(math32.Min(bh-1, math32.Ceil(max(a.y, b.y, c.y))))
	return t, true
}

// edge is twice the signed area of the triangle a, b, p.
func edge(a, b screenVert, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillBand rasterizes all triangles overlapping rows y0 to y1.
func (r *Renderer) fillBand(bw, y0, y1 int) {
	pix := r.buf.Pix
	stride := r.buf.Stride
	for i := range r.tris {
		t := &r.tris[i]
		lo, hi := max(t.minY, y0), min(t.maxY, y1-1)
		if lo > hi || t.minX > t.maxX {
			continue
		}
		a, b, c := &t.v[0], &t.v[1], &t.v[2]
		for y := lo; y <= hi; y++ {
			py := float32(y) + 0.5
			for x := t.minX; x <= t.maxX; x++ {
				px := float32(x) + 0.5
				w0 := edge(*b, *c, px, py) * t.invArea
				w1 := edge(*c, *a, px, py) * t.invArea
				w2 := edge(*a, *b, px, py) * t.invArea
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				z := w0*a.z + w1*b.z + w2*c.z
				di := y*bw + x
				if z > 1 || z >= r.depth[di] {
					continue
				}
				r.depth[di] = z
				iw := w0*a.iw + w1*b.iw + w2*c.iw
				col := a.col.Scale(w0).Add(b.col.Scale(w1)).Add(c.col.Scale(w2)).Scale(1 / iw)
				o := y*stride + 4*x
				pix[o], pix[o+1], pix[o+2] = r.encode(col)
				pix[o+3] = 255
			}
		}
	}
}
