// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

// clipVert is a vertex in homogeneous clip space, with its
// barycentric weights relative to the source triangle.
type clipVert struct {
	x, y, z, w float32
	bary       [3]float32
}

func (a clipVert) lerp(b clipVert, t float32) clipVert {
	l := func(p, q float32) float32 { return p + (q-p)*t }
	return clipVert{
		x: l(a.x, b.x), y: l(a.y, b.y), z: l(a.z, b.z), w: l(a.w, b.w),
		bary: [3]float32{l(a.bary[0], b.bary[0]), l(a.bary[1], b.bary[1]), l(a.bary[2], b.bary[2])},
	}
}

// nearDist is the signed distance to the near plane, z >= -w.
func (a clipVert) nearDist() float32 {
	return a.z + a.w
}

// outside reports whether the triangle lies entirely beyond one of
// the frustum planes.
func outside(vs *[3]clipVert) bool {
	all := func(f func(v clipVert) bool) bool {
		return f(vs[0]) && f(vs[1]) && f(vs[2])
	}
	return all(func(v clipVert) bool { return v.x > v.w }) ||
		all(func(v clipVert) bool { return v.x < -v.w }) ||
		all(func(v clipVert) bool { return v.y > v.w }) ||
		all(func(v clipVert) bool { return v.y < -v.w }) ||
		all(func(v clipVert) bool { return v.z > v.w }) ||
		all(func(v clipVert) bool { return v.nearDist() < 0 })
}

// clipNear clips the triangle against the near plane into out,
// returning the number of polygon vertices: 0, 3 or 4.
func clipNear(vs *[3]clipVert, out *[4]clipVert) int {
	n := 0
	for i := range 3 {
		a, b := vs[i], vs[(i+1)%3]
		da, db := a.nearDist(), b.nearDist()
		if da >= 0 {
			out[n] = a
			n++
		}
		if (da >= 0) != (db >= 0) {
			out[n] = a.lerp(b, da/(da-db))
			n++
		}
	}
	if n < 3 {
		return 0
	}
	return n
}
