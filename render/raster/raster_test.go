// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"testing"

	"cogentcore.org/quoteforest/base/iox/imagex"
	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/render"
	"cogentcore.org/quoteforest/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCamera() *xyz.Camera {
	cam := xyz.NewPerspectiveCamera(45, 1, 0.1, 100)
	cam.SetPosition(math32.Vec3(0, 0, 10))
	cam.LookAtOrigin()
	return cam
}

func newRenderer(w, h int) *Renderer {
	r := New()
	r.Antialias = false
	r.SetSize(w, h)
	return r
}

func emissiveBox(sc *xyz.Scene, name string, size float32, hex uint32) *xyz.Solid {
	mt := xyz.NewMaterial(0x000000)
	mt.Emissive = colors.FromHex(hex)
	sld := xyz.NewSolid(name, xyz.NewBox(sc, name, size, size, size), mt)
	sc.Add(sld)
	return sld
}

func center(r *Renderer) color.RGBA {
	img := r.Image()
	b := img.Bounds()
	return img.RGBAAt(b.Dx()/2, b.Dy()/2)
}

func TestBackground(t *testing.T) {
	sc := xyz.NewScene("bg")
	sc.SetBackground(0x102030)
	r := newRenderer(8, 6)
	r.Render(sc, newCamera())
	img := r.Image()
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
	for y := range 6 {
		for x := range 8 {
			assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, img.RGBAAt(x, y))
		}
	}
	assert.Equal(t, uint64(1), r.Info.Frame)
	assert.Zero(t, r.Info.Triangles)

	r.SetOutputEncoding(render.Linear)
	sc.SetBackground(0x808080)
	r.Render(sc, newCamera())
	assert.InDelta(t, 55, int(center(r).R), 1)
	assert.Equal(t, uint64(2), r.Info.Frame)
}

func TestEmissiveBox(t *testing.T) {
	sc := xyz.NewScene("box")
	emissiveBox(sc, "box", 2, 0xffffff)
	r := newRenderer(64, 64)
	r.Render(sc, newCamera())

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, center(r))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, r.Image().RGBAAt(1, 1))
	assert.Equal(t, 1, r.Info.Solids)
	assert.Equal(t, 12, r.Info.Triangles)
	assert.Equal(t, 10, r.Info.Culled)
	assert.Equal(t, 2, r.Info.Drawn)
}

func TestHiddenSolid(t *testing.T) {
	sc := xyz.NewScene("hidden")
	sld := emissiveBox(sc, "box", 2, 0xffffff)
	sld.Hidden = true
	r := newRenderer(16, 16)
	r.Render(sc, newCamera())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(r))
	assert.Zero(t, r.Info.Solids)
}

func TestDepth(t *testing.T) {
	sc := xyz.NewScene("depth")
	near := emissiveBox(sc, "near", 1, 0xff0000)
	near.SetPos(0, 0, 2)
	far := emissiveBox(sc, "far", 3, 0x00ff00)
	far.SetPos(0, 0, -2)
	r := newRenderer(64, 64)
	r.Render(sc, newCamera())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, center(r))
	// the far box shows around the near one
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, r.Image().RGBAAt(32, 22))
}

func TestPixelRatio(t *testing.T) {
	sc := xyz.NewScene("ratio")
	emissiveBox(sc, "box", 2, 0xffffff)
	r := New()
	r.SetSize(10, 5)
	r.SetPixelRatio(2)
	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
	r.Render(sc, newCamera())
	assert.Equal(t, 20, r.Image().Bounds().Dx())
	assert.Equal(t, 10, r.Image().Bounds().Dy())
	assert.Equal(t, 40, r.buf.Bounds().Dx())

	r.SetPixelRatio(0)
	assert.Equal(t, float32(1), r.PixelRatio())

	r.SetSize(0, 0)
	r.Render(sc, newCamera())
	assert.True(t, r.Image().Bounds().Empty())
}

func TestLighting(t *testing.T) {
	sc := xyz.NewScene("lit")
	sc.SetBackground(0x0000ff)
	sc.Add(xyz.NewSolid("box", xyz.NewBox(sc, "box", 2, 2, 2), xyz.NewMaterial(0xffffff)))
	pl := xyz.NewPointLight(sc, "light", 0xffffff, 1, 0)
	pl.Pos = math32.Vec3(0, 0, 10)
	r := newRenderer(32, 32)
	r.Render(sc, newCamera())
	c := center(r)
	assert.Greater(t, c.R, uint8(240))
	assert.Equal(t, c.R, c.B)

	pl.On = false
	r.Render(sc, newCamera())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(r))

	xyz.NewAmbientLight(sc, "ambient", 0xffffff, 1)
	r.Render(sc, newCamera())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, center(r))
}

func TestFog(t *testing.T) {
	sc := xyz.NewScene("fog")
	emissiveBox(sc, "box", 2, 0xffffff)
	r := newRenderer(32, 32)
	r.Render(sc, newCamera())
	plain := center(r)

	sc.Fog = xyz.NewFogExp2(0x000000, 0.1)
	r.Render(sc, newCamera())
	fogged := center(r)
	assert.Less(t, fogged.R, plain.R)
	assert.Greater(t, fogged.R, uint8(0))
}

func triangle(sc *xyz.Scene, back, cull bool, verts ...math32.Vector3) {
	ms := xyz.NewGenMesh("tri")
	for _, v := range verts {
		ms.AddVertex(v, math32.Vec3(0, 0, 1))
	}
	if back {
		ms.AddTriangle(0, 2, 1)
	} else {
		ms.AddTriangle(0, 1, 2)
	}
	mt := xyz.NewMaterial(0x000000)
	mt.Emissive = colors.FromHex(0xffffff)
	mt.CullBack = cull
	sc.Add(xyz.NewSolid("tri", ms, mt))
}

func TestCullBack(t *testing.T) {
	verts := []math32.Vector3{math32.Vec3(-1, -1, 0), math32.Vec3(1, -1, 0), math32.Vec3(0, 1, 0)}
	for _, tc := range []struct {
		name    string
		back    bool
		cull    bool
		visible bool
	}{
		{"front", false, true, true},
		{"back culled", true, true, false},
		{"back shown", true, false, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sc := xyz.NewScene(tc.name)
			triangle(sc, tc.back, tc.cull, verts...)
			r := newRenderer(32, 32)
			r.Render(sc, newCamera())
			if tc.visible {
				assert.Equal(t, color.RGBA{255, 255, 255, 255}, center(r))
			} else {
				assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(r))
				assert.Equal(t, 1, r.Info.Culled)
			}
		})
	}
}

func TestNearClip(t *testing.T) {
	sc := xyz.NewScene("clip")
	// the apex is behind the camera
	triangle(sc, false, false, math32.Vec3(-1, -1, 0), math32.Vec3(1, -1, 0), math32.Vec3(0, 3, 20))
	r := newRenderer(32, 32)
	r.Render(sc, newCamera())
	assert.Equal(t, 1, r.Info.Triangles)
	assert.Equal(t, 2, r.Info.Drawn)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, r.Image().RGBAAt(16, 2))
}

func TestClipNear(t *testing.T) {
	vs := [3]clipVert{
		{x: 0, y: 0, z: -2, w: 1, bary: [3]float32{1, 0, 0}},
		{x: 1, y: 0, z: 0, w: 1, bary: [3]float32{0, 1, 0}},
		{x: 0, y: 1, z: 0, w: 1, bary: [3]float32{0, 0, 1}},
	}
	var out [4]clipVert
	require.Equal(t, 4, clipNear(&vs, &out))
	for _, v := range out {
		assert.GreaterOrEqual(t, v.nearDist(), float32(-1e-6))
		assert.InDelta(t, 1, v.bary[0]+v.bary[1]+v.bary[2], 1e-6)
	}

	for i := range vs {
		vs[i].z = -5
	}
	assert.Zero(t, clipNear(&vs, &out))
	assert.True(t, outside(&vs))
}

func TestLitScene(t *testing.T) {
	sc := xyz.NewScene("lit")
	sc.SetBackground(0xcccccc)
	sc.Fog = xyz.NewFogExp2(0xcccccc, 0.02)
	xyz.NewAmbientLight(sc, "ambient", 0xffffff, 0.2)
	pl := xyz.NewPointLight(sc, "point", 0xff0000, 1, 40)
	pl.Pos = math32.Vec3(4, 6, 8)
	for i, x := range []float32{-3, 0, 3} {
		sld := xyz.NewSolid("box", xyz.NewBox(sc, "box", 1.5, 1.5+float32(i), 1.5), xyz.NewMaterial(0xeeeeee))
		sld.SetPos(x, 0, -float32(i)*2)
		sld.SetAxisRotationRad(0, 1, 0, 0.5)
		sc.Add(sld)
	}
	r := New()
	r.SetSize(64, 48)
	r.Render(sc, newCamera())
	assert.Equal(t, 3, r.Info.Solids)
	imagex.Assert(t, r.Image(), "lit-scene")
}
