// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/quoteforest/math32"

// Box is a rectangular-shaped solid (cuboid) centered on the origin.
type Box struct {
	MeshBase

	// Size is the size along each dimension
	Size math32.Vector3
}

// NewBox returns a Box mesh with given name and size, registered on
// the scene if sc is non-nil.
func NewBox(sc *Scene, name string, width, height, depth float32) *Box {
	bx := &Box{}
	bx.Name = name
	bx.Size.Set(width, height, depth)
	bx.Build()
	if sc != nil {
		sc.SetMesh(bx)
	}
	return bx
}

// boxFaces lists the outward normal of each face and two in-plane
// axes u, v with u x v = normal, so that corners wound
// -u-v, +u-v, +u+v, -u+v are counter-clockwise from outside.
var boxFaces = [6][3]math32.Vector3{
	{{X: 1}, {Y: 1}, {Z: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {Z: 1}, {X: 1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {Y: 1}, {X: 1}},
}

// Build regenerates the vertices from [Box.Size], with four
// vertices per face so that each face has its own normal.
func (bx *Box) Build() {
	hs := bx.Size.MulScalar(0.5)
	bx.Positions = bx.Positions[:0]
	bx.Normals = bx.Normals[:0]
	bx.Indices = bx.Indices[:0]
	for _, f := range boxFaces {
		n, u, v := f[0], f[1].Mul(hs), f[2].Mul(hs)
		c := n.Mul(hs)
		i0 := bx.AddVertex(c.Sub(u).Sub(v), n)
		i1 := bx.AddVertex(c.Add(u).Sub(v), n)
		i2 := bx.AddVertex(c.Add(u).Add(v), n)
		i3 := bx.AddVertex(c.Sub(u).Add(v), n)
		bx.AddTriangle(i0, i1, i2)
		bx.AddTriangle(i0, i2, i3)
	}
	bx.ComputeBounds()
}
