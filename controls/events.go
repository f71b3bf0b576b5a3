// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import "cogentcore.org/quoteforest/math32"

// Button is a pointer button.
type Button int

const (
	NoButton Button = iota
	Left
	Middle
	Right
)

// DragAction is what a pointer drag does.
type DragAction int

const (
	DragNone DragAction = iota
	DragPan
	DragRotate
	DragZoom
)

var (
	// NavOrbit is the keyboard orbit step, in radians.
	NavOrbit = math32.DegToRad(5)

	// NavPan is the keyboard pan step, as a fraction of the target distance.
	NavPan = float32(0.05)

	// NavZoom is the keyboard zoom step.
	NavZoom = float32(1)
)

// Action returns what dragging with the given button does:
// left pans, right rotates, middle zooms.
func (mc *MapControls) Action(b Button) DragAction {
	switch b {
	case Left:
		return DragPan
	case Right:
		return DragRotate
	case Middle:
		return DragZoom
	}
	return DragNone
}

// Drag handles a pointer drag by dx, dy pixels with the given button
// held, in a view of the given height.
func (mc *MapControls) Drag(b Button, dx, dy float32, height int) {
	switch mc.Action(b) {
	case DragPan:
		mc.Pan(dx, dy, height)
	case DragRotate:
		mc.Rotate(dx, dy, height)
	case DragZoom:
		switch {
		case dy > 0:
			mc.Zoom(-1)
		case dy < 0:
			mc.Zoom(1)
		}
	}
}

// Scroll handles a scroll wheel motion; scrolling up zooms in.
func (mc *MapControls) Scroll(dy float32) {
	mc.Zoom(dy)
}

// NavKey handles the standard keyboard navigation keys, given as key
// chord names ("UpArrow", "Shift+LeftArrow", "+"), and reports
// whether the key was handled. Arrows pan; shifted arrows orbit.
func (mc *MapControls) NavKey(chord string) bool {
	pan := NavPan * max(mc.distance(), 1)
	switch chord {
	case "UpArrow":
		mc.PanDistance(0, pan)
	case "DownArrow":
		mc.PanDistance(0, -pan)
	case "LeftArrow":
		mc.PanDistance(pan, 0)
	case "RightArrow":
		mc.PanDistance(-pan, 0)
	case "Shift+UpArrow":
		mc.RotateAngles(0, NavOrbit)
	case "Shift+DownArrow":
		mc.RotateAngles(0, -NavOrbit)
	case "Shift+LeftArrow":
		mc.RotateAngles(NavOrbit, 0)
	case "Shift+RightArrow":
		mc.RotateAngles(-NavOrbit, 0)
	case "+", "=", "Shift++":
		mc.Zoom(NavZoom)
	case "-", "_", "Shift+_":
		mc.Zoom(-NavZoom)
	default:
		return false
	}
	return true
}
