// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/quoteforest/math32"

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent)
	Pos math32.Vector3

	// Scale is the scale (relative to parent)
	Scale math32.Vector3

	// Quat is the node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// Matrix is the local matrix. Contains all position/rotation/scale information (relative to parent)
	Matrix math32.Matrix4

	// WorldMatrix contains all absolute position/rotation/scale information
	// (i.e. relative to very top parent, generally the scene)
	WorldMatrix math32.Matrix4

	// frozen poses keep their Matrix until explicitly updated.
	frozen bool
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// Freeze computes the local matrix once from the current values and
// stops [Scene.UpdateWorldMatrices] from recomputing it each frame.
// Call [Pose.UpdateMatrix] after changing a frozen pose.
func (ps *Pose) Freeze() {
	ps.UpdateMatrix()
	ps.frozen = true
}

// Unfreeze restores automatic per-frame matrix updates.
func (ps *Pose) Unfreeze() {
	ps.frozen = false
}

// IsFrozen returns whether the local matrix is only updated explicitly.
func (ps *Pose) IsFrozen() bool {
	return ps.frozen
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and parent's WorldMatrix.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// MoveOnAxis moves (translates) the specified distance on the specified local axis,
// relative to the current rotation orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Defaults()
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.SetAxisRotationRad(x, y, z, math32.DegToRad(angle))
}

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// RotateOnAxis rotates around the specified local axis the specified angle in degrees.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Defaults()
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Translation()
}
