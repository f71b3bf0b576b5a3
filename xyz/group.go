// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/quoteforest/math32"

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup returns a new group with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	return gp
}

// Add appends the given node to the children of the group.
// If the group is already in a scene the node is added to that scene.
func (gp *Group) Add(n Node) {
	if sc := gp.scene; sc != nil {
		sc.AddTo(gp, n)
		return
	}
	n.AsNode().parent = &gp.NodeBase
	gp.Children = append(gp.Children, n)
}

// WorldBBox returns the bounding box, in world coordinates, of all
// solids in the group. World matrices must be up to date.
func (gp *Group) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	walk(&gp.NodeBase, func(n Node) bool {
		if sld, ok := n.(*Solid); ok && sld.Mesh != nil {
			bb.ExpandByBox(sld.Mesh.AsMeshBase().BBox.BBox.MulMatrix4(&sld.Pose.WorldMatrix))
		}
		return true
	})
	return bb
}
