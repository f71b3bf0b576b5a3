// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scenegraph: a [Scene] holds a tree of [Group]
// and [Solid] nodes, the [Mesh]es they share, the scene [Light]s and
// the atmosphere (background and fog), and is viewed through a [Camera].
package xyz

import (
	"image/color"

	"cogentcore.org/quoteforest/colors"
)

// Scene is the overall scenegraph containing nodes as children of its Root.
//
// Nodes are referred to by their [NodeID]; the scene owns the nodes
// and [Scene.NodeByID] resolves an ID to the node.
type Scene struct {

	// Name is the name of the scene.
	Name string

	// Background is the clear color of the rendered image.
	Background color.RGBA

	// Fog, if non-nil, blends distant surfaces into the fog color.
	Fog *FogExp2

	// Lights are all lights used in the scene
	Lights []Light

	// Root is the top-level group; its pose applies to all nodes.
	Root Group

	meshes    map[string]Mesh
	meshOrder []string
	nodes     map[NodeID]Node
	lastID    NodeID
}

// NewScene returns a new empty scene with a black background.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Background = colors.FromRGB(0, 0, 0)
	sc.meshes = make(map[string]Mesh)
	sc.nodes = make(map[NodeID]Node)
	sc.Root.Name = "root"
	sc.Root.scene = sc
	sc.Root.Pose.Defaults()
	return sc
}

// SetBackground sets the background color from a 0xRRGGBB value.
func (sc *Scene) SetBackground(hex uint32) {
	sc.Background = colors.FromHex(hex)
}

// Add adds the given node, and any children it already has,
// to the root of the scene, returning its ID.
func (sc *Scene) Add(n Node) NodeID {
	return sc.AddTo(&sc.Root, n)
}

// AddTo adds the given node, and any children it already has,
// as a child of parent, returning its ID. A node that is already in a
// scene keeps its ID and is moved to the new parent.
func (sc *Scene) AddTo(parent Node, n Node) NodeID {
	pb := parent.AsNode()
	nb := n.AsNode()
	if nb.parent != nil {
		nb.parent.removeChild(n)
	}
	nb.parent = pb
	pb.Children = append(pb.Children, n)
	sc.register(n)
	return nb.ID
}

func (sc *Scene) register(n Node) {
	nb := n.AsNode()
	if nb.scene != sc || nb.ID == 0 {
		sc.lastID++
		nb.ID = sc.lastID
		nb.scene = sc
	}
	nb.Pose.Defaults()
	sc.nodes[nb.ID] = n
	for _, kid := range nb.Children {
		kid.AsNode().parent = nb
		sc.register(kid)
	}
}

func (nb *NodeBase) removeChild(n Node) {
	for i, kid := range nb.Children {
		if kid == n {
			nb.Children = append(nb.Children[:i], nb.Children[i+1:]...)
			return
		}
	}
}

// Remove removes the node with the given ID and all of its children
// from the scene, returning false if there is no such node.
func (sc *Scene) Remove(id NodeID) bool {
	n, ok := sc.nodes[id]
	if !ok {
		return false
	}
	nb := n.AsNode()
	if nb.parent != nil {
		nb.parent.removeChild(n)
		nb.parent = nil
	}
	sc.unregister(n)
	return true
}

func (sc *Scene) unregister(n Node) {
	nb := n.AsNode()
	delete(sc.nodes, nb.ID)
	nb.scene = nil
	for _, kid := range nb.Children {
		sc.unregister(kid)
	}
}

// NodeByID returns the node with the given ID, if it is in the scene.
func (sc *Scene) NodeByID(id NodeID) (Node, bool) {
	n, ok := sc.nodes[id]
	return n, ok
}

// SolidByID returns the solid with the given ID, if it is in the scene
// and is a [Solid].
func (sc *Scene) SolidByID(id NodeID) (*Solid, bool) {
	n, ok := sc.nodes[id]
	if !ok {
		return nil, false
	}
	sld, ok := n.(*Solid)
	return sld, ok
}

// NumNodes returns the number of nodes in the scene, excluding the root.
func (sc *Scene) NumNodes() int {
	return len(sc.nodes)
}

// Walk calls fun on every node below the root in depth-first order,
// parents before children. Children of a node are skipped if fun
// returns false for it.
func (sc *Scene) Walk(fun func(n Node) bool) {
	walk(&sc.Root.NodeBase, fun)
}

func walk(nb *NodeBase, fun func(n Node) bool) {
	for _, kid := range nb.Children {
		if fun(kid) {
			walk(kid.AsNode(), fun)
		}
	}
}

// UpdateWorldMatrices updates the local matrix of every node whose
// pose is not frozen, and the world matrix of every node.
func (sc *Scene) UpdateWorldMatrices() {
	root := &sc.Root.Pose
	if !root.IsFrozen() {
		root.UpdateMatrix()
	}
	root.UpdateWorldMatrix(nil)
	sc.Walk(func(n Node) bool {
		nb := n.AsNode()
		if !nb.Pose.IsFrozen() {
			nb.Pose.UpdateMatrix()
		}
		nb.Pose.UpdateWorldMatrix(&nb.parent.Pose.WorldMatrix)
		return true
	})
}
