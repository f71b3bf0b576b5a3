// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/quoteforest/math32"

// Camera defines the properties of a perspective camera that looks
// from its position toward a target point.
type Camera struct {

	// Pose is the position of the camera; only Pos is used.
	Pose Pose

	// Target is the location the camera points at.
	// It moves with panning movements, and is reset by a call to LookAt.
	Target math32.Vector3

	// UpDir is the up direction for camera -- which way is up -- defaults to positive Y axis,
	// and is reset by call to LookAt method
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees
	FOV float32

	// Aspect is the aspect ratio (width/height)
	Aspect float32

	// Near is the near plane distance
	Near float32

	// Far is the far plane distance
	Far float32

	// ViewMatrix transforms world coordinates into camera coordinates.
	ViewMatrix math32.Matrix4

	// ProjectionMatrix defines the camera perspective transform.
	ProjectionMatrix math32.Matrix4
}

// NewPerspectiveCamera returns a camera with the given projection
// parameters, at the origin looking down the negative Z axis.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	cm := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	cm.Pose.Defaults()
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.Target = math32.Vec3(0, 0, -1)
	cm.UpdateProjectionMatrix()
	cm.UpdateMatrix()
	return cm
}

// Defaults sets the default projection parameters.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
	cm.UpdateProjectionMatrix()
}

// SetPosition sets the camera position without changing the target.
func (cm *Camera) SetPosition(pos math32.Vector3) {
	cm.Pose.Pos = pos
	cm.UpdateMatrix()
}

// UpdateProjectionMatrix updates the projection matrix from FOV,
// Aspect, Near and Far; call it after changing any of them.
func (cm *Camera) UpdateProjectionMatrix() {
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// UpdateMatrix updates the view matrix from the position, target and
// up direction. It is a no-op while the camera sits on its target.
func (cm *Camera) UpdateMatrix() {
	vv := cm.ViewVector()
	if vv.IsNil() {
		return
	}
	up := cm.UpDir
	if up.IsNil() || vv.Cross(up).IsNil() {
		up = math32.Vec3(0, 0, 1)
		if vv.Cross(up).IsNil() {
			up = math32.Vec3(1, 0, 0)
		}
	}
	cm.ViewMatrix.SetLookAt(cm.Pose.Pos, cm.Target, up)
}

// ViewProjection returns the projection matrix times the view matrix.
func (cm *Camera) ViewProjection() *math32.Matrix4 {
	return cm.ProjectionMatrix.Mul(&cm.ViewMatrix)
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}
