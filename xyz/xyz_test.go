// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxMesh(t *testing.T) {
	sc := NewScene("test")
	bx := NewBox(sc, "box", 1, 2, 3)
	require.NoError(t, bx.Validate())
	assert.Equal(t, 24, len(bx.Positions))
	assert.Equal(t, 12, bx.NumTriangles())
	assert.Equal(t, math32.B3(-0.5, -1, -1.5, 0.5, 1, 1.5), bx.BBox.BBox)
	assert.Equal(t, Mesh(bx), sc.MeshByName("box"))
	assert.Equal(t, 1, sc.NumMeshes())

	// every triangle winds counter-clockwise around its outward normal
	for i := 0; i < bx.NumTriangles(); i++ {
		a, b, c := bx.Triangle(i)
		fn := bx.Positions[b].Sub(bx.Positions[a]).Cross(bx.Positions[c].Sub(bx.Positions[a]))
		assert.Greater(t, fn.Dot(bx.Normals[a]), float32(0))
	}

	bx.Translate(math32.Vec3(0, 1, 0))
	assert.Equal(t, math32.B3(-0.5, 0, -1.5, 0.5, 2, 1.5), bx.BBox.BBox)
	assert.Equal(t, math32.Vec3(0, 1, 0), bx.BBox.BSphere.Center)

	_, err := sc.MeshByNameTry("nope")
	assert.Error(t, err)
}

func TestMeshValidate(t *testing.T) {
	ms := NewGenMesh("tri")
	a := ms.AddVertex(math32.Vec3(0, 0, 0), math32.Vector3{})
	b := ms.AddVertex(math32.Vec3(1, 0, 0), math32.Vector3{})
	c := ms.AddVertex(math32.Vec3(0, 1, 0), math32.Vector3{})
	ms.AddTriangle(a, b, c)
	require.NoError(t, ms.Validate())
	ms.ComputeNormals()
	assert.Equal(t, math32.Vec3(0, 0, 1), ms.Normals[0])

	ms.Indices = append(ms.Indices, 7)
	assert.Error(t, ms.Validate())
	ms.Indices = append(ms.Indices, 7, 7)
	assert.ErrorContains(t, ms.Validate(), "out of range")
}

func TestSceneNodes(t *testing.T) {
	sc := NewScene("test")
	bx := NewBox(sc, "box", 1, 1, 1)
	gp := NewGroup("g")
	s1 := NewSolid("s1", bx, NewMaterial(0xeeeeee))
	gp.Add(s1)
	gid := sc.Add(gp)
	s2 := NewSolid("s2", bx, NewMaterial(0x8f1856))
	id2 := sc.Add(s2)

	assert.NotZero(t, gid)
	assert.NotZero(t, s1.ID)
	assert.NotEqual(t, s1.ID, id2)
	assert.Equal(t, 3, sc.NumNodes())
	assert.Equal(t, sc, s1.Scene())
	assert.Equal(t, &gp.NodeBase, s1.Parent())

	got, ok := sc.SolidByID(id2)
	require.True(t, ok)
	assert.Same(t, s2, got)
	_, ok = sc.SolidByID(gid)
	assert.False(t, ok)

	var order []string
	sc.Walk(func(n Node) bool {
		order = append(order, n.AsNode().Name)
		return true
	})
	assert.Equal(t, []string{"g", "s1", "s2"}, order)

	s3 := NewSolid("s3", bx, NewMaterial(0))
	gp.Add(s3)
	assert.Equal(t, 4, sc.NumNodes())

	assert.True(t, sc.Remove(gid))
	assert.False(t, sc.Remove(gid))
	assert.Equal(t, 1, sc.NumNodes())
	_, ok = sc.NodeByID(s1.ID)
	assert.False(t, ok)
}

func TestPoseFreeze(t *testing.T) {
	sc := NewScene("test")
	bx := NewBox(sc, "box", 1, 1, 1)
	frozen := NewSolid("frozen", bx, NewMaterial(0))
	frozen.SetPos(1, 0, 0)
	frozen.Pose.Freeze()
	live := NewSolid("live", bx, NewMaterial(0))
	sc.Add(frozen)
	sc.Add(live)

	frozen.SetPos(5, 0, 0)
	live.SetPos(0, 3, 0)
	sc.UpdateWorldMatrices()
	assert.Equal(t, math32.Vec3(1, 0, 0), frozen.Pose.WorldPos())
	assert.Equal(t, math32.Vec3(0, 3, 0), live.Pose.WorldPos())
	assert.True(t, frozen.Pose.IsFrozen())

	frozen.Pose.UpdateMatrix()
	sc.UpdateWorldMatrices()
	assert.Equal(t, math32.Vec3(5, 0, 0), frozen.Pose.WorldPos())
}

func TestGroupTransform(t *testing.T) {
	sc := NewScene("test")
	bx := NewBox(sc, "box", 2, 2, 2)
	gp := NewGroup("g")
	gp.SetPos(10, 0, 0)
	gp.SetScale(2, 2, 2)
	sld := NewSolid("s", bx, NewMaterial(0))
	sld.SetPos(1, 0, 0)
	gp.Add(sld)
	sc.Add(gp)
	sc.UpdateWorldMatrices()

	assert.Equal(t, math32.Vec3(12, 0, 0), sld.Pose.WorldPos())
	assert.Equal(t, math32.B3(10, -2, -2, 14, 2, 2), gp.WorldBBox())
}

func TestLightsAndFog(t *testing.T) {
	sc := NewScene("test")
	NewAmbientLight(sc, "ambient", 0x8f1856, 0.001)
	pl := NewPointLight(sc, "p", 0xff0000, 1, 100)
	require.Len(t, sc.Lights, 2)
	assert.Same(t, pl, sc.LightByName("p"))
	assert.Nil(t, sc.LightByName("q"))

	assert.Equal(t, float32(1), pl.Attenuation(0))
	assert.InDelta(t, 0.25, pl.Attenuation(50), 1e-6)
	assert.Equal(t, float32(0), pl.Attenuation(150))
	pl.Distance = 0
	assert.Equal(t, float32(1), pl.Attenuation(1e6))

	assert.Equal(t, colors.Linear{R: 1}, pl.Radiance())
	pl.On = false
	assert.Equal(t, colors.Linear{}, pl.Radiance())

	fog := NewFogExp2(0xcccccc, 0.002)
	assert.Equal(t, colors.FromHex(0xcccccc), fog.Color)
	assert.Equal(t, float32(0), fog.Factor(0))
	assert.InDelta(t, 1-0.3679, fog.Factor(500), 0.001)
	assert.Greater(t, fog.Factor(1000), fog.Factor(500))
	var nofog *FogExp2
	assert.Equal(t, float32(0), nofog.Factor(1000))
}

func TestCamera(t *testing.T) {
	cm := NewPerspectiveCamera(60, 800.0/600.0, 1, 1000)
	cm.SetPosition(math32.Vec3(0, -200, -300))
	cm.SetPosition(math32.Vec3(5, 2, 8))
	assert.Equal(t, math32.Vec3(5, 2, 8), cm.Pose.Pos)

	cm.LookAt(math32.Vec3(0, 0.5, 0), math32.Vector3{})
	c, w := cm.ViewProjection().MulVector3AsClip(math32.Vec3(0, 0.5, 0))
	assert.InDelta(t, 0, c.X/w, 1e-5)
	assert.InDelta(t, 0, c.Y/w, 1e-5)

	assert.InDelta(t, math32.Vec3(5, 1.5, 8).Length(), cm.ViewVector().Length(), 1e-5)

	cm.Aspect = 1920.0 / 1080.0
	cm.UpdateProjectionMatrix()
	assert.InDelta(t, cm.ProjectionMatrix[5]/cm.Aspect, cm.ProjectionMatrix[0], 1e-5)
}

type hook struct {
	Solid
	calls int
}

func (h *hook) OnBeforeRender(s Surface, sc *Scene, cam *Camera) {
	h.calls++
}

func TestBeforeRenderers(t *testing.T) {
	sc := NewScene("test")
	h := &hook{}
	h.Name = "hook"
	sc.Add(h)
	hidden := &hook{}
	hidden.Hidden = true
	sc.Add(hidden)
	sc.Add(NewSolid("plain", nil, NewMaterial(0)))
	brs := sc.BeforeRenderers()
	require.Len(t, brs, 1)
	brs[0].OnBeforeRender(nil, sc, nil)
	assert.Equal(t, 1, h.calls)
}
