// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// NodeID identifies a node within its [Scene]. IDs are assigned when a
// node is added to a scene and are never reused by that scene.
// The zero NodeID is never assigned.
type NodeID uint64

// Node is an element of the scene graph: a [Group] or a [Solid].
type Node interface {

	// AsNode returns the [NodeBase] for this Node,
	// which provides the core functionality of a node.
	AsNode() *NodeBase
}

// NodeBase is the common part of all scene graph nodes:
// identity, pose and children.
type NodeBase struct {

	// ID is the scene-unique id, assigned by [Scene.Add].
	ID NodeID

	// Name is an optional label, not required to be unique.
	Name string

	// Pose is the position, rotation and scale relative to the parent.
	Pose Pose

	// Hidden excludes this node and its children from rendering.
	Hidden bool

	// Children are the nodes whose poses are relative to this one.
	Children []Node

	parent *NodeBase
	scene  *Scene
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

// Parent returns the parent node, or nil for the scene root
// and for nodes that have not been added to a scene.
func (nb *NodeBase) Parent() *NodeBase {
	return nb.parent
}

// Scene returns the scene this node has been added to, or nil.
func (nb *NodeBase) Scene() *Scene {
	return nb.scene
}

// SetPos sets the [Pose.Pos] position of the node.
func (nb *NodeBase) SetPos(x, y, z float32) {
	nb.Pose.Pos.Set(x, y, z)
}

// SetScale sets the [Pose.Scale] scale of the node.
func (nb *NodeBase) SetScale(x, y, z float32) {
	nb.Pose.Scale.Set(x, y, z)
}

// SetAxisRotationRad sets the [Pose.Quat] rotation of the node,
// from local axis and angle in radians.
func (nb *NodeBase) SetAxisRotationRad(x, y, z, angle float32) {
	nb.Pose.SetAxisRotationRad(x, y, z, angle)
}
