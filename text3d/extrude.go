// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/xyz"
)

// bevelLayer is one cross-section of an extruded shape: the outline
// pushed outward by offset, at depth z.
type bevelLayer struct {
	z, offset float32
}

// layers returns the cross-sections from the back cap to the front cap.
// With a bevel, the body runs from z=0 to z=Depth expanded by
// BevelSize+BevelOffset, and each cap is reached through BevelSegments
// quarter-circle steps of BevelThickness.
func (o *TextOptions) layers() []bevelLayer {
	if !o.BevelEnabled || o.BevelSegments < 1 {
		return []bevelLayer{{0, 0}, {o.Depth, 0}}
	}
	segs := o.BevelSegments
	step := func(b int) (z, offset float32) {
		t := float32(b) / float32(segs) * math32.Pi / 2
		return o.BevelThickness * math32.Cos(t), o.BevelSize*math32.Sin(t) + o.BevelOffset
	}
	ls := make([]bevelLayer, 0, 2*segs+2)
	for b := range segs {
		z, off := step(b)
		ls = append(ls, bevelLayer{-z, off})
	}
	full := o.BevelSize + o.BevelOffset
	ls = append(ls, bevelLayer{0, full}, bevelLayer{o.Depth, full})
	for b := segs - 1; b >= 0; b-- {
		z, off := step(b)
		ls = append(ls, bevelLayer{o.Depth + z, off})
	}
	return ls
}

// extrudeShape appends the triangles of the extruded shape to ms, with
// one vertex per triangle corner carrying the face normal. tris is the
// cap triangulation, indexing [Shape.Points].
func extrudeShape(ms *xyz.MeshBase, sh *Shape, tris []uint32, o *TextOptions) {
	contours := make([][]math32.Vector2, 0, 1+len(sh.Holes))
	contours = append(contours, sh.Contour)
	contours = append(contours, sh.Holes...)
	moves := make([][]math32.Vector2, len(contours))
	for ci, c := range contours {
		moves[ci] = bevelVectors(c)
	}
	ls := o.layers()
	// section[l] holds the points of every contour at layer l, in
	// Points order so that cap indices apply directly.
	section := make([][]math32.Vector3, len(ls))
	for l, ly := range ls {
		var pts []math32.Vector3
		for ci, c := range contours {
			for i, p := range c {
				q := p.Add(moves[ci][i].MulScalar(ly.offset))
				pts = append(pts, math32.Vec3(q.X, q.Y, ly.z))
			}
		}
		section[l] = pts
	}
	back, front := section[0], section[len(section)-1]
	for t := 0; t+2 < len(tris); t += 3 {
		a, b, c := tris[t], tris[t+1], tris[t+2]
		addFace(ms, back[c], back[b], back[a])
		addFace(ms, front[a], front[b], front[c])
	}
	for l := 0; l+1 < len(section); l++ {
		lo, hi := section[l], section[l+1]
		off := 0
		for _, c := range contours {
			n := len(c)
			for i := range n {
				j := off + (i+1)%n
				k := off + i
				addFace(ms, lo[k], lo[j], hi[j])
				addFace(ms, lo[k], hi[j], hi[k])
			}
			off += n
		}
	}
}

// addFace appends a flat-shaded triangle, skipping degenerate ones.
func addFace(ms *xyz.MeshBase, a, b, c math32.Vector3) {
	fn := b.Sub(a).Cross(c.Sub(a))
	if fn.LengthSquared() < 1e-12 {
		return
	}
	fn = fn.Normal()
	i := ms.AddVertex(a, fn)
	ms.AddVertex(b, fn)
	ms.AddVertex(c, fn)
	ms.AddTriangle(i, i+1, i+2)
}

// bevelVectors returns, for each vertex of the contour, the direction
// to move it to grow the filled region by a unit distance. For an outer
// counter-clockwise contour and a clockwise hole this is the right-hand
// side of the direction of travel. Sharp corners are limited to a
// length of √2.
func bevelVectors(c []math32.Vector2) []math32.Vector2 {
	n := len(c)
	res := make([]math32.Vector2, n)
	for i, p := range c {
		prev, next := c[(i+n-1)%n], c[(i+1)%n]
		n1 := p.Sub(prev).Normal().Perp()
		n2 := next.Sub(p).Normal().Perp()
		sum := n1.Add(n2)
		if sum.LengthSquared() < 1e-12 {
			res[i] = n1
			continue
		}
		dir := sum.Normal()
		cos := dir.Dot(n1)
		scale := math32.Sqrt(2)
		if cos > 1/scale {
			scale = 1 / cos
		}
		res[i] = dir.MulScalar(scale)
	}
	return res
}
