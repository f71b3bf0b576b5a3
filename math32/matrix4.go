// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// Matrix4 is 4x4 matrix organized internally as column matrix,
// matching the layout of [mgl32.Mat4].
type Matrix4 [16]float32

func (m *Matrix4) mgl() mgl32.Mat4 {
	return mgl32.Mat4(*m)
}

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := Matrix4(mgl32.Ident4())
	return &m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4(mgl32.Ident4())
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	*m = Matrix4(mgl32.Translate3D(x, y, z))
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := Matrix4(m.mgl().Mul4(other.mgl()))
	return &nm
}

// SetMul sets this matrix to this matrix times other
func (m *Matrix4) SetMul(other *Matrix4) {
	*m = Matrix4(m.mgl().Mul4(other.mgl()))
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., b*a).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	*m = Matrix4(a.mgl().Mul4(b.mgl()))
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	return m.mgl().Det()
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted returns error and
// sets this matrix to the identity matrix.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	if m.Determinant() == 0 {
		return Identity4(), ErrSingularMatrix
	}
	nm := Matrix4(m.mgl().Inv())
	return &nm, nil
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	t := mgl32.Translate3D(pos.X, pos.Y, pos.Z)
	r := quat.mgl().Mat4()
	s := mgl32.Scale3D(scale.X, scale.Y, scale.Z)
	*m = Matrix4(t.Mul4(r).Mul4(s))
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fovy, aspect, near, far float32) {
	*m = Matrix4(mgl32.Perspective(DegToRad(fovy), aspect, near, far))
}

// SetLookAt sets this matrix to the view matrix for an eye at the given
// position looking at target, with the given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	*m = Matrix4(mgl32.LookAtV(eye.mgl(), target.mgl(), up.mgl()))
}

// Translation returns the translation component of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// MaxScale returns the largest axis scale encoded in this matrix.
func (m *Matrix4) MaxScale() float32 {
	return mgl32.ExtractMaxScale(m.mgl())
}

// MulVector3AsClip returns the homogeneous clip-space coordinates of the
// given point: x, y, z before the perspective divide, plus w.
func (m *Matrix4) MulVector3AsClip(v Vector3) (Vector3, float32) {
	c := m.mgl().Mul4x1(v.mgl().Vec4(1))
	return Vec3(c[0], c[1], c[2]), c[3]
}

// NormalMatrix returns the inverse transpose of this matrix, which
// transforms normals consistently with points under non-uniform scaling.
// A singular matrix yields the identity.
func (m *Matrix4) NormalMatrix() *Matrix4 {
	if m.Determinant() == 0 {
		return Identity4()
	}
	nm := Matrix4(m.mgl().Inv().Transpose())
	return &nm
}
