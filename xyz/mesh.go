// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/quoteforest/math32"
)

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
// Only indexed triangle meshes are supported. A mesh can be shared by
// any number of solids.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// BBox contains bounding box and other gross solid properties
type BBox struct {

	// BBox is the bounding box in local coords
	BBox math32.Box3

	// BSphere is the bounding sphere in local coords
	BSphere math32.Sphere
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh. Meshes registered on a [Scene]
	// are looked up by name.
	Name string

	// Positions are the vertex positions.
	Positions []math32.Vector3

	// Normals are the per-vertex normals, parallel to Positions.
	Normals []math32.Vector3

	// Indices are the vertex indexes, three per triangle,
	// counter-clockwise when seen from the front.
	Indices []uint32

	// BBox has the computed bounding-box and bounding-sphere,
	// updated by [MeshBase.ComputeBounds].
	BBox BBox
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *MeshBase) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the vertex indexes of the i-th triangle.
func (ms *MeshBase) Triangle(i int) (a, b, c uint32) {
	return ms.Indices[3*i], ms.Indices[3*i+1], ms.Indices[3*i+2]
}

// AddTriangle appends a triangle with the given vertex indexes.
func (ms *MeshBase) AddTriangle(a, b, c uint32) {
	ms.Indices = append(ms.Indices, a, b, c)
}

// AddVertex appends a vertex, returning its index.
func (ms *MeshBase) AddVertex(pos, norm math32.Vector3) uint32 {
	ms.Positions = append(ms.Positions, pos)
	ms.Normals = append(ms.Normals, norm)
	return uint32(len(ms.Positions) - 1)
}

// ComputeBounds updates [MeshBase.BBox] from the current positions.
// The bounding sphere is centered on the bounding box.
func (ms *MeshBase) ComputeBounds() {
	ms.BBox.BBox.SetFromPoints(ms.Positions)
	ms.BBox.BSphere.SetFromPoints(ms.Positions)
}

// Translate moves all vertices by the given offset and updates the bounds.
func (ms *MeshBase) Translate(offset math32.Vector3) {
	for i := range ms.Positions {
		ms.Positions[i].SetAdd(offset)
	}
	ms.ComputeBounds()
}

// Scale multiplies all vertices by the given factors and updates the bounds.
func (ms *MeshBase) Scale(s math32.Vector3) {
	for i := range ms.Positions {
		ms.Positions[i] = ms.Positions[i].Mul(s)
	}
	ms.ComputeBounds()
}

// ComputeNormals sets smooth per-vertex normals as the area-weighted
// average of the normals of the triangles sharing each vertex.
func (ms *MeshBase) ComputeNormals() {
	ms.Normals = make([]math32.Vector3, len(ms.Positions))
	for i := 0; i < ms.NumTriangles(); i++ {
		a, b, c := ms.Triangle(i)
		pa, pb, pc := ms.Positions[a], ms.Positions[b], ms.Positions[c]
		fn := pb.Sub(pa).Cross(pc.Sub(pa))
		ms.Normals[a].SetAdd(fn)
		ms.Normals[b].SetAdd(fn)
		ms.Normals[c].SetAdd(fn)
	}
	for i := range ms.Normals {
		ms.Normals[i] = ms.Normals[i].Normal()
	}
}

// Validate checks that the indices describe whole triangles of
// existing vertices and that normals match positions.
func (ms *MeshBase) Validate() error {
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("xyz: mesh %q has %d indices, not a multiple of 3", ms.Name, len(ms.Indices))
	}
	if len(ms.Normals) != len(ms.Positions) {
		return fmt.Errorf("xyz: mesh %q has %d normals for %d positions", ms.Name, len(ms.Normals), len(ms.Positions))
	}
	for _, ix := range ms.Indices {
		if int(ix) >= len(ms.Positions) {
			return fmt.Errorf("xyz: mesh %q index %d out of range of %d vertices", ms.Name, ix, len(ms.Positions))
		}
	}
	return nil
}

// GenMesh is a generic, arbitrary Mesh, built by appending
// vertices and triangles.
type GenMesh struct {
	MeshBase
}

// NewGenMesh returns a new empty [GenMesh] with the given name.
func NewGenMesh(name string) *GenMesh {
	return &GenMesh{MeshBase{Name: name}}
}

// SetMesh sets / updates the given mesh, replacing any existing
// mesh of the same name.
func (sc *Scene) SetMesh(ms Mesh) {
	name := ms.AsMeshBase().Name
	if _, ok := sc.meshes[name]; !ok {
		sc.meshOrder = append(sc.meshOrder, name)
	}
	sc.meshes[name] = ms
}

// MeshByName looks for mesh by name, returning nil if not found.
func (sc *Scene) MeshByName(nm string) Mesh {
	return sc.meshes[nm]
}

// MeshByNameTry looks for mesh by name, returning error if not found.
func (sc *Scene) MeshByNameTry(nm string) (Mesh, error) {
	ms, ok := sc.meshes[nm]
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("Mesh named: %v not found in Scene: %v", nm, sc.Name)
}

// NumMeshes returns the number of meshes registered on the scene.
func (sc *Scene) NumMeshes() int {
	return len(sc.meshOrder)
}
