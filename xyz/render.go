// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Surface is the part of a renderer visible to per-frame node hooks.
type Surface interface {

	// Size returns the surface size in logical pixels.
	Size() (width, height int)
}

// BeforeRenderer is implemented by nodes that need to update
// themselves immediately before each frame is rendered.
type BeforeRenderer interface {
	OnBeforeRender(s Surface, sc *Scene, cam *Camera)
}

// BeforeRenderers returns all visible nodes implementing [BeforeRenderer],
// in scene order.
func (sc *Scene) BeforeRenderers() []BeforeRenderer {
	var brs []BeforeRenderer
	sc.Walk(func(n Node) bool {
		if n.AsNode().Hidden {
			return false
		}
		if br, ok := n.(BeforeRenderer); ok {
			brs = append(brs, br)
		}
		return true
	})
	return brs
}
