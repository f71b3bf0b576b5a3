// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"testing"

	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newControls() *MapControls {
	cam := xyz.NewPerspectiveCamera(60, 1, 1, 1000)
	cam.SetPosition(math32.Vec3(0, 10, 10))
	cam.LookAt(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	return NewMapControls(cam)
}

func TestUpdateKeepsDistance(t *testing.T) {
	mc := newControls()
	mc.Target = math32.Vec3(0, 0.5, 0)
	mc.Update()
	d0 := mc.Camera.Pose.Pos.DistanceTo(mc.Target)
	mc.RotateAngles(0.3, 0.1)
	assert.True(t, mc.Update())
	assert.InDelta(t, d0, mc.Camera.Pose.Pos.DistanceTo(mc.Target), 1e-3)
	assert.Equal(t, mc.Target, mc.Camera.Target)
	assert.False(t, mc.Update())
}

func TestPanGroundPlane(t *testing.T) {
	mc := newControls()
	mc.Update()
	y0 := mc.Camera.Pose.Pos.Y
	mc.Pan(10, 20, 100)
	mc.Update()
	assert.Equal(t, float32(0), mc.Target.Y)
	assert.InDelta(t, y0, mc.Camera.Pose.Pos.Y, 1e-4)
	assert.NotZero(t, mc.Target.X)
	assert.NotZero(t, mc.Target.Z)

	mc.EnablePan = false
	tg := mc.Target
	mc.Pan(10, 20, 100)
	mc.Update()
	assert.Equal(t, tg, mc.Target)
}

func TestDamping(t *testing.T) {
	mc := newControls()
	mc.EnableDamping = true
	mc.Update()
	mc.PanDistance(10, 0)
	mc.Update()
	first := mc.Target.X
	assert.InDelta(t, 0.5, math32.Abs(first), 1e-4)
	mc.Update()
	assert.Greater(t, math32.Abs(mc.Target.X), math32.Abs(first))
	for range 500 {
		mc.Update()
	}
	assert.InDelta(t, 10, math32.Abs(mc.Target.X), 1e-2)
	assert.False(t, mc.Update())
}

func TestZoomAndLimits(t *testing.T) {
	mc := newControls()
	mc.Update()
	d0 := mc.Camera.Pose.Pos.DistanceTo(mc.Target)
	mc.Zoom(1)
	mc.Update()
	assert.InDelta(t, d0*0.95, mc.Camera.Pose.Pos.DistanceTo(mc.Target), 1e-3)

	mc.MinDistance = 12
	mc.Zoom(20)
	mc.Update()
	assert.InDelta(t, 12, mc.Camera.Pose.Pos.DistanceTo(mc.Target), 1e-3)

	mc.MaxPolarAngle = math32.Pi / 2
	mc.RotateAngles(0, -3)
	mc.Update()
	assert.GreaterOrEqual(t, mc.Camera.Pose.Pos.Y, float32(-1e-3))
}

func TestNavKeyAndDrag(t *testing.T) {
	mc := newControls()
	mc.Update()
	assert.False(t, mc.NavKey("q"))
	require.True(t, mc.NavKey("RightArrow"))
	mc.Update()
	assert.Greater(t, mc.Target.X, float32(0))

	assert.Equal(t, DragPan, mc.Action(Left))
	assert.Equal(t, DragRotate, mc.Action(Right))
	assert.Equal(t, DragZoom, mc.Action(Middle))
	assert.Equal(t, DragNone, mc.Action(NoButton))

	d0 := mc.Camera.Pose.Pos.DistanceTo(mc.Target)
	mc.Scroll(1)
	mc.Update()
	assert.Less(t, mc.Camera.Pose.Pos.DistanceTo(mc.Target), d0)
}
