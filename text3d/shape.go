// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"slices"

	"cogentcore.org/quoteforest/math32"
)

// Shape is a filled region: an outer contour with any number of holes.
// The outer contour is counter-clockwise and holes are clockwise.
type Shape struct {
	Contour []math32.Vector2
	Holes   [][]math32.Vector2
}

// Points returns the contour points followed by the points of every hole,
// which is the vertex order used by [Shape.Triangulate].
func (sh *Shape) Points() []math32.Vector2 {
	n := len(sh.Contour)
	for _, h := range sh.Holes {
		n += len(h)
	}
	pts := make([]math32.Vector2, 0, n)
	pts = append(pts, sh.Contour...)
	for _, h := range sh.Holes {
		pts = append(pts, h...)
	}
	return pts
}

// SignedArea returns the area enclosed by the polygon,
// positive for counter-clockwise winding.
func SignedArea(pts []math32.Vector2) float32 {
	var a float32
	n := len(pts)
	for i, p := range pts {
		q := pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// PointInPolygon reports whether p lies inside the polygon (even-odd rule).
func PointInPolygon(p math32.Vector2, pts []math32.Vector2) bool {
	in := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Shapes groups closed contours into shapes by nesting depth: contours
// inside an even number of others are outer contours, the rest are holes
// of the smallest outer contour enclosing them. Windings are normalized.
// This works for fonts regardless of the orientation convention they use.
func Shapes(contours [][]math32.Vector2) []Shape {
	type info struct {
		pts   []math32.Vector2
		area  float32
		depth int
	}
	cs := make([]info, 0, len(contours))
	for _, c := range contours {
		a := SignedArea(c)
		if a == 0 {
			continue
		}
		cs = append(cs, info{pts: c, area: math32.Abs(a)})
	}
	contains := func(outer, inner int) bool {
		return cs[outer].area > cs[inner].area && PointInPolygon(cs[inner].pts[0], cs[outer].pts)
	}
	for i := range cs {
		for j := range cs {
			if i != j && contains(j, i) {
				cs[i].depth++
			}
		}
	}
	var shapes []Shape
	outerOf := make([]int, len(cs))
	for i := range cs {
		outerOf[i] = -1
		if cs[i].depth%2 != 0 {
			continue
		}
		outerOf[i] = len(shapes)
		shapes = append(shapes, Shape{Contour: oriented(cs[i].pts, true)})
	}
	for i := range cs {
		if cs[i].depth%2 == 0 {
			continue
		}
		best := -1
		for j := range cs {
			if cs[j].depth == cs[i].depth-1 && contains(j, i) {
				if best < 0 || cs[j].area < cs[best].area {
					best = j
				}
			}
		}
		if best < 0 {
			continue
		}
		sh := &shapes[outerOf[best]]
		sh.Holes = append(sh.Holes, oriented(cs[i].pts, false))
	}
	return shapes
}

// oriented returns a copy of pts wound counter-clockwise if ccw,
// and clockwise otherwise.
func oriented(pts []math32.Vector2, ccw bool) []math32.Vector2 {
	res := slices.Clone(pts)
	if (SignedArea(res) > 0) != ccw {
		slices.Reverse(res)
	}
	return res
}
