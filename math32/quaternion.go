// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	return quatFromMgl(mgl32.QuatRotate(angle, axis.Normal().mgl()))
}

func (q Quat) mgl() mgl32.Quat {
	if q.IsNil() {
		return mgl32.QuatIdent()
	}
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func quatFromMgl(m mgl32.Quat) Quat {
	return Quat{X: m.V[0], Y: m.V[1], Z: m.V[2], W: m.W}
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	*q = Quat{W: 1}
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
// A nil quaternion is treated as the identity.
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle in radians.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	*q = NewQuatAxisAngle(axis, angle)
}

// Mul returns the product of this quaternion with other.
func (q Quat) Mul(other Quat) Quat {
	return quatFromMgl(q.mgl().Mul(other.mgl()))
}

// SetMul sets this quaternion to the product of itself with other.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	*q = quatFromMgl(q.mgl().Normalize())
}

// Inverse returns the inverse of this quaternion.
func (q Quat) Inverse() Quat {
	return quatFromMgl(q.mgl().Inverse())
}
