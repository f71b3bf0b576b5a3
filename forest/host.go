// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import "time"

// Container holds the elements a forest presents: the renderer
// surface and the stats widget, in the order they are appended.
type Container interface {
	Append(el any)
}

// Viewport is the visible area the forest is drawn into.
type Viewport interface {

	// Size returns the viewport size in logical pixels.
	Size() (width, height int)

	// PixelRatio returns the number of device pixels per logical pixel.
	PixelRatio() float32

	// OnResize registers fun to be called on the host thread after
	// every change of size.
	OnResize(fun func())
}

// Scheduler runs callbacks on the host thread. Callbacks never run
// concurrently with each other.
type Scheduler interface {

	// Now returns the current host time.
	Now() time.Time

	// RequestFrame calls fun once before the next frame is presented.
	RequestFrame(fun func())

	// Post calls fun as soon as possible. It is safe to call from
	// any goroutine.
	Post(fun func())

	// AfterFunc calls fun once d has elapsed.
	AfterFunc(d time.Duration, fun func())
}
