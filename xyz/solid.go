// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "image/color"

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Material contains the material properties of the surface.
	Material Material

	// Mesh is the shape of the solid, possibly shared with other solids.
	Mesh Mesh
}

// NewSolid returns a new solid with the given name, mesh and material.
func NewSolid(name string, ms Mesh, mt Material) *Solid {
	sld := &Solid{Material: mt, Mesh: ms}
	sld.Name = name
	sld.Pose.Defaults()
	return sld
}

// SetColor sets the [Material.Color]
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// BoundingRadius returns the radius of the bounding sphere of the
// mesh in local (unscaled) coordinates, and false if there is no mesh.
func (sld *Solid) BoundingRadius() (float32, bool) {
	if sld.Mesh == nil {
		return 0, false
	}
	return sld.Mesh.AsMeshBase().BBox.BSphere.Radius, true
}
