// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = 1.0e-5

func assertVector3InDelta(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol)
	assert.InDelta(t, want.Y, got.Y, standardTol)
	assert.InDelta(t, want.Z, got.Z, standardTol)
}

func TestMatrix4Transform(t *testing.T) {
	vx := Vec3(1, 0, 0)

	assert.Equal(t, vx, vx.MulMatrix4AsPoint(Identity4()))

	m := &Matrix4{}
	m.SetTranslation(1, 2, 3)
	assertVector3InDelta(t, Vec3(2, 2, 3), vx.MulMatrix4AsPoint(m))
	assertVector3InDelta(t, vx, vx.MulMatrix4AsVector(m))

	// 1,0,0 -> scale(2) = 2,0,0 -> rotate 90 about z = 0,2,0 -> trans 1,1,0 -> 1,3,0
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	m.SetTransform(Vec3(1, 1, 0), q, Vec3(2, 2, 2))
	assertVector3InDelta(t, Vec3(1, 3, 0), vx.MulMatrix4AsPoint(m))
	assert.InDelta(t, 2, m.MaxScale(), standardTol)
	assertVector3InDelta(t, Vec3(1, 1, 0), m.Translation())

	inv, err := m.Inverse()
	require.NoError(t, err)
	assertVector3InDelta(t, vx, Vec3(1, 3, 0).MulMatrix4AsPoint(inv))

	_, err = (&Matrix4{}).Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)

	// normals of a surface stretched along x tilt toward y
	var st Matrix4
	st.SetTransform(Vector3{}, Quat{W: 1}, Vec3(4, 1, 1))
	n := Vec3(1, 1, 0).MulMatrix4AsVector(st.NormalMatrix()).Normal()
	assert.Greater(t, n.Y, n.X)
	assert.Equal(t, *Identity4(), *(&Matrix4{}).NormalMatrix())
}

func TestMatrix4Projection(t *testing.T) {
	var view, proj Matrix4
	view.SetLookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 1, 0))
	proj.SetPerspective(90, 1.5, 0.01, 100)
	mvp := proj.Mul(&view)

	// the target projects onto the center of the view
	c, w := mvp.MulVector3AsClip(Vec3(0, 0, 0))
	assert.InDelta(t, 10, w, standardTol)
	assert.InDelta(t, 0, c.X, standardTol)
	assert.InDelta(t, 0, c.Y, standardTol)

	// points behind the camera have negative w
	_, w = mvp.MulVector3AsClip(Vec3(0, 0, 20))
	assert.Less(t, w, float32(0))

	// a point on the top edge of a 90 degree frustum
	top := Vec3(0, 10, 0).MulMatrix4AsPoint(mvp)
	assert.InDelta(t, 1, top.Y, standardTol)
}

func TestQuat(t *testing.T) {
	var q Quat
	assert.True(t, q.IsNil())
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(q))

	q.SetIdentity()
	assert.True(t, q.IsIdentity())

	rz := NewQuatAxisAngle(Vec3(0, 0, 2), DegToRad(90))
	assertVector3InDelta(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(rz))
	assertVector3InDelta(t, Vec3(-1, 0, 0), Vec3(1, 0, 0).MulQuat(rz.Mul(rz)))
	assertVector3InDelta(t, Vec3(1, 0, 0), Vec3(0, 1, 0).MulQuat(rz.Inverse()))
}

func TestBoxAndSphere(t *testing.T) {
	pts := []Vector3{{0, 0, 0}, {2, 0, 0}, {0, 4, 0}, {2, 4, 6}}
	var b Box3
	b.SetFromPoints(pts)
	assert.Equal(t, B3(0, 0, 0, 2, 4, 6), b)
	assert.Equal(t, Vec3(1, 2, 3), b.Center())
	assert.Equal(t, Vec3(2, 4, 6), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(1, 1, 1)))
	assert.False(t, b.ContainsPoint(Vec3(3, 1, 1)))
	assert.True(t, B3Empty().IsEmpty())

	var s Sphere
	s.SetFromPoints(pts)
	assert.Equal(t, Vec3(1, 2, 3), s.Center)
	assert.InDelta(t, Sqrt(1+4+9), s.Radius, standardTol)
	for _, p := range pts {
		assert.True(t, s.ContainsPoint(p))
	}

	s.SetFromPoints(nil)
	assert.True(t, s.IsEmpty())
}

func TestVector(t *testing.T) {
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assertVector3InDelta(t, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, float32(-2), Vec2(1, 0).Cross(Vec2(0, -2)))
	assert.Equal(t, Vec2(1, -1), Vec2(1, 1).Perp())
	assertVector3InDelta(t, Vec3(0, 0, 1), Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0)))
}
