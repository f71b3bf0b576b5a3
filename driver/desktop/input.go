// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

package desktop

import (
	"cogentcore.org/quoteforest/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input tracks the pointer between updates.
type input struct {
	dragging bool
	lastX    int
	lastY    int
}

var buttons = []struct {
	eb  ebiten.MouseButton
	btn controls.Button
}{
	{ebiten.MouseButtonLeft, controls.Left},
	{ebiten.MouseButtonRight, controls.Right},
	{ebiten.MouseButtonMiddle, controls.Middle},
}

var navKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, "UpArrow"},
	{ebiten.KeyArrowDown, "DownArrow"},
	{ebiten.KeyArrowLeft, "LeftArrow"},
	{ebiten.KeyArrowRight, "RightArrow"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "+"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "-"},
}

// apply feeds the input since the last update to the controls.
func (in *input) apply(mc *controls.MapControls, height int) {
	x, y := ebiten.CursorPosition()
	held := controls.NoButton
	for _, b := range buttons {
		if ebiten.IsMouseButtonPressed(b.eb) {
			held = b.btn
			break
		}
	}
	if held != controls.NoButton && in.dragging {
		mc.Drag(held, float32(x-in.lastX), float32(y-in.lastY), height)
	}
	in.dragging = held != controls.NoButton
	in.lastX, in.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		mc.Scroll(float32(wy))
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range navKeys {
		if !inpututil.IsKeyJustPressed(k.key) && !repeating(k.key) {
			continue
		}
		chord := k.name
		if shift {
			chord = "Shift+" + chord
		}
		mc.NavKey(chord)
	}
}

// repeating reports whether a held key should repeat this update.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d > 30 && d%4 == 0
}
