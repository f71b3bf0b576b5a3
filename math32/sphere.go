// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

// ErrSingularMatrix is returned when inverting a matrix with a zero determinant.
var ErrSingularMatrix = errors.New("math32: matrix is singular and cannot be inverted")

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// NewSphere creates and returns a pointer to a new sphere with
// the specified center and radius.
func NewSphere(center Vector3, radius float32) *Sphere {
	return &Sphere{center, radius}
}

// SetFromPoints sets this sphere from the specified points array.
// The center is the center of the points' bounding box and the radius
// is the largest distance from that center to any point.
func (s *Sphere) SetFromPoints(points []Vector3) {
	if len(points) == 0 {
		*s = Sphere{}
		return
	}
	var box Box3
	box.SetFromPoints(points)
	s.Center = box.Center()
	var maxRadiusSq float32
	for _, p := range points {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSquared(p))
	}
	s.Radius = Sqrt(maxRadiusSq)
}

// IsEmpty checks if this sphere is empty (radius <= 0)
func (s *Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// ContainsPoint returns if this sphere contains the specified point.
func (s *Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= (s.Radius * s.Radius)
}

// Translate translates this sphere by the specified offset.
func (s *Sphere) Translate(offset Vector3) {
	s.Center.SetAdd(offset)
}
