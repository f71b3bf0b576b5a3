// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"slices"
	"sort"

	"cogentcore.org/quoteforest/math32"
)

// Triangulate fills the shape with triangles, returned as index triples
// into [Shape.Points], each wound counter-clockwise. Holes are first
// bridged into the outer contour, then the resulting polygon is ear clipped.
func (sh *Shape) Triangulate() []uint32 {
	pts := sh.Points()
	ring := make([]int, len(sh.Contour))
	for i := range ring {
		ring[i] = i
	}
	type hole struct {
		start, n, right int
	}
	holes := make([]hole, 0, len(sh.Holes))
	off := len(sh.Contour)
	for _, h := range sh.Holes {
		hl := hole{start: off, n: len(h), right: off}
		for i := range h {
			if pts[off+i].X > pts[hl.right].X {
				hl.right = off + i
			}
		}
		holes = append(holes, hl)
		off += len(h)
	}
	sort.SliceStable(holes, func(i, j int) bool {
		return pts[holes[i].right].X > pts[holes[j].right].X
	})
	for _, h := range holes {
		hidx := make([]int, 0, h.n+1)
		for k := range h.n + 1 {
			hidx = append(hidx, h.start+(h.right-h.start+k)%h.n)
		}
		ring = bridgeHole(pts, ring, hidx)
	}
	return earClip(pts, ring)
}

// bridgeHole splices the hole into the ring through a zero-width bridge
// from the rightmost hole vertex (hidx[0], repeated at the end) to a
// visible ring vertex.
func bridgeHole(pts []math32.Vector2, ring []int, hidx []int) []int {
	m := pts[hidx[0]]
	n := len(ring)
	best := -1
	bestX := math32.Infinity
	var hit math32.Vector2
	for i := range n {
		a, b := pts[ring[i]], pts[ring[(i+1)%n]]
		if a.Y == b.Y || m.Y < min(a.Y, b.Y) || m.Y > max(a.Y, b.Y) {
			continue
		}
		x := a.X + (m.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < m.X || x >= bestX {
			continue
		}
		bestX = x
		hit = math32.Vec2(x, m.Y)
		best = i
		if b.X > a.X {
			best = (i + 1) % n
		}
	}
	if best < 0 {
		best = nearest(pts, ring, m)
	} else {
		// a ring vertex inside the triangle (m, hit, p) would block the
		// bridge; take the one closest in angle to the ray instead.
		p := pts[ring[best]]
		bestTan := math32.Infinity
		for i := range n {
			v := pts[ring[i]]
			if i == best || v.X < m.X || v.IsEqual(m) || !inTriangle(m, hit, p, v) {
				continue
			}
			tan := math32.Abs(v.Y-m.Y) / (v.X - m.X)
			if tan < bestTan || (tan == bestTan && v.X < pts[ring[best]].X) {
				bestTan = tan
				best = i
			}
		}
	}
	res := make([]int, 0, n+len(hidx)+1)
	res = append(res, ring[:best+1]...)
	res = append(res, hidx...)
	res = append(res, ring[best])
	res = append(res, ring[best+1:]...)
	return res
}

func nearest(pts []math32.Vector2, ring []int, m math32.Vector2) int {
	best := 0
	bestD := math32.Infinity
	for i, ix := range ring {
		if d := pts[ix].Sub(m).LengthSquared(); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// earClip triangulates the simple counter-clockwise polygon
// given by ring indices into pts.
func earClip(pts []math32.Vector2, ring []int) []uint32 {
	r := slices.Clone(ring)
	tris := make([]uint32, 0, 3*max(len(r)-2, 0))
	emit := func(a, b, c int) {
		tris = append(tris, uint32(a), uint32(b), uint32(c))
	}
	i, stuck := 0, 0
	for len(r) > 3 {
		n := len(r)
		i %= n
		ia, ib, ic := r[(i+n-1)%n], r[i], r[(i+1)%n]
		a, b, c := pts[ia], pts[ib], pts[ic]
		cr := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cr == 0:
			r = slices.Delete(r, i, i+1)
			stuck = 0
		case cr > 0 && isEar(pts, r, a, b, c):
			emit(ia, ib, ic)
			r = slices.Delete(r, i, i+1)
			stuck = 0
		default:
			i++
			stuck++
			if stuck > n {
				// no ear left in a degenerate polygon: force progress
				if cr > 0 {
					emit(ia, ib, ic)
				}
				r = slices.Delete(r, i-1, i)
				stuck = 0
			}
		}
	}
	if len(r) == 3 {
		a, b, c := pts[r[0]], pts[r[1]], pts[r[2]]
		if b.Sub(a).Cross(c.Sub(b)) > 0 {
			emit(r[0], r[1], r[2])
		}
	}
	return tris
}

func isEar(pts []math32.Vector2, r []int, a, b, c math32.Vector2) bool {
	for _, ix := range r {
		p := pts[ix]
		if p.IsEqual(a) || p.IsEqual(b) || p.IsEqual(c) {
			continue
		}
		if inTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}

// inTriangle reports whether p is inside or on the edges of triangle abc,
// in either winding.
func inTriangle(a, b, c, p math32.Vector2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}
