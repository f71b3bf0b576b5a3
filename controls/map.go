// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls provides camera navigation controllers.
package controls

import (
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/xyz"
)

const eps = 0.000001

// MapControls moves a camera around a target point as over a map:
// panning slides the target in the ground (XZ) plane, rotating orbits
// around the target, and zooming dollies toward it. Input only
// accumulates motion; [MapControls.Update] applies it, and with damping
// enabled keeps easing it out over subsequent updates, so it must be
// called every frame.
type MapControls struct {

	// Camera is the controlled camera.
	Camera *xyz.Camera

	// Target is the point the camera orbits around and looks at.
	Target math32.Vector3

	EnablePan    bool
	EnableRotate bool
	EnableZoom   bool

	// EnableDamping gives motion inertia.
	EnableDamping bool

	// DampingFactor is the fraction of the pending motion applied
	// per update when damping.
	DampingFactor float32

	// ScreenSpacePanning pans in the view plane instead of the ground plane.
	ScreenSpacePanning bool

	PanSpeed    float32
	RotateSpeed float32
	ZoomSpeed   float32

	// MinDistance and MaxDistance bound the distance to the target.
	MinDistance float32
	MaxDistance float32

	// MinPolarAngle and MaxPolarAngle bound the angle from the up
	// axis, in radians.
	MinPolarAngle float32
	MaxPolarAngle float32

	// pending motion
	theta, phi float32
	panOffset  math32.Vector3
	scale      float32

	lastPos  math32.Vector3
	lastView math32.Vector3
}

// NewMapControls returns controls for the given camera targeting its
// current target, with every motion enabled and no damping.
func NewMapControls(cam *xyz.Camera) *MapControls {
	mc := &MapControls{Camera: cam}
	mc.Defaults()
	mc.Target = cam.Target
	return mc
}

func (mc *MapControls) Defaults() {
	mc.EnablePan = true
	mc.EnableRotate = true
	mc.EnableZoom = true
	mc.DampingFactor = 0.05
	mc.PanSpeed = 1
	mc.RotateSpeed = 1
	mc.ZoomSpeed = 1
	mc.MinDistance = 0
	mc.MaxDistance = math32.Infinity
	mc.MinPolarAngle = 0
	mc.MaxPolarAngle = math32.Pi
	mc.scale = 1
}

// distance returns the distance from the camera to the target.
func (mc *MapControls) distance() float32 {
	return mc.Camera.Pose.Pos.DistanceTo(mc.Target)
}

// Rotate orbits by the given screen-space drag in pixels, for a
// view of the given height: a drag of the full height turns a full circle.
func (mc *MapControls) Rotate(dx, dy float32, height int) {
	if !mc.EnableRotate || height <= 0 {
		return
	}
	k := 2 * math32.Pi * mc.RotateSpeed / float32(height)
	mc.RotateAngles(dx*k, dy*k)
}

// RotateAngles orbits left and up by the given angles in radians.
func (mc *MapControls) RotateAngles(left, up float32) {
	mc.theta -= left
	mc.phi -= up
}

// Pan moves by the given screen-space drag in pixels, for a view of
// the given height, such that the target follows the pointer.
func (mc *MapControls) Pan(dx, dy float32, height int) {
	if !mc.EnablePan || height <= 0 {
		return
	}
	dist := mc.distance() * math32.Tan(math32.DegToRad(mc.Camera.FOV/2))
	k := 2 * dist * mc.PanSpeed / float32(height)
	mc.PanDistance(dx*k, dy*k)
}

// PanDistance moves left and up (or forward, when not screen-space
// panning) by the given world distances.
func (mc *MapControls) PanDistance(left, up float32) {
	right, fwd := mc.panAxes()
	mc.panOffset.SetAdd(right.MulScalar(-left))
	mc.panOffset.SetAdd(fwd.MulScalar(up))
}

// panAxes returns the world directions for horizontal and vertical panning.
func (mc *MapControls) panAxes() (right, vert math32.Vector3) {
	cam := mc.Camera
	view := cam.Pose.Pos.Sub(mc.Target)
	upDir := cam.UpDir
	if upDir.IsNil() {
		upDir = math32.Vec3(0, 1, 0)
	}
	right = upDir.Cross(view).Normal()
	if right.IsNil() {
		right = math32.Vec3(1, 0, 0)
	}
	if mc.ScreenSpacePanning {
		vert = view.Cross(right).Normal()
	} else {
		vert = math32.Vec3(0, 1, 0).Cross(right)
	}
	return
}

// Zoom dollies toward the target by the given number of steps;
// negative steps move away.
func (mc *MapControls) Zoom(steps float32) {
	if !mc.EnableZoom {
		return
	}
	mc.scale *= math32.Pow(0.95, steps*mc.ZoomSpeed)
}

// Update applies pending motion to the camera and reports whether the
// camera moved or turned.
func (mc *MapControls) Update() bool {
	cam := mc.Camera
	offset := cam.Pose.Pos.Sub(mc.Target)
	radius := offset.Length()
	theta := math32.Atan2(offset.X, offset.Z)
	var phi float32
	if radius > 0 {
		phi = math32.Acos(math32.Clamp(offset.Y/radius, -1, 1))
	}

	f := float32(1)
	if mc.EnableDamping {
		f = mc.DampingFactor
	}
	theta += mc.theta * f
	phi += mc.phi * f
	phi = math32.Clamp(phi, mc.MinPolarAngle, mc.MaxPolarAngle)
	phi = math32.Clamp(phi, eps, math32.Pi-eps)

	if mc.scale == 0 {
		mc.scale = 1
	}
	radius = math32.Clamp(radius*mc.scale, mc.MinDistance, mc.MaxDistance)
	mc.Target.SetAdd(mc.panOffset.MulScalar(f))

	sinPhi := math32.Sin(phi)
	offset = math32.Vec3(radius*sinPhi*math32.Sin(theta), radius*math32.Cos(phi), radius*sinPhi*math32.Cos(theta))
	cam.Pose.Pos = mc.Target.Add(offset)
	cam.LookAt(mc.Target, math32.Vec3(0, 1, 0))

	if mc.EnableDamping {
		mc.theta *= 1 - f
		mc.phi *= 1 - f
		mc.panOffset.SetMulScalar(1 - f)
	} else {
		mc.theta, mc.phi = 0, 0
		mc.panOffset.SetZero()
	}
	mc.scale = 1

	view := cam.ViewVector().Normal()
	changed := mc.lastPos.DistanceToSquared(cam.Pose.Pos) > eps || 8*(1-mc.lastView.Dot(view)) > eps
	mc.lastPos = cam.Pose.Pos
	mc.lastView = view
	return changed
}
