// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software z-buffer implementation of
// [render.Renderer], with per-vertex Lambert lighting, exponential
// fog and optional supersampled antialiasing.
package raster

import (
	"image"
	"image/color"
	"runtime"

	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/render"
	"cogentcore.org/quoteforest/xyz"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Info has the statistics of the last rendered frame.
type Info struct {

	// Frame counts the calls to Render.
	Frame uint64

	// Solids is the number of visible solids drawn.
	Solids int

	// Triangles is the number of mesh triangles submitted.
	Triangles int

	// Culled is the number of triangles dropped as back-facing.
	Culled int

	// Drawn is the number of screen triangles rasterized, after clipping.
	Drawn int
}

// Renderer draws scenes in software. The zero value is not ready to
// use; call [New].
type Renderer struct {

	// Antialias renders at twice the buffer resolution and
	// filters the result down.
	Antialias bool

	// Info has the statistics of the last frame.
	Info Info

	width, height int
	ratio         float32
	enc           render.Encoding

	buf   *image.RGBA
	out   *image.RGBA
	depth []float32
	tris  []screenTri
}

var _ render.Renderer = (*Renderer)(nil)

// New returns an antialiased renderer with sRGB output and a
// pixel ratio of 1.
func New() *Renderer {
	return &Renderer{Antialias: true, ratio: 1, enc: render.SRGB, out: &image.RGBA{}}
}

func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = max(width, 0), max(height, 0)
}

func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.ratio = ratio
}

func (r *Renderer) PixelRatio() float32 {
	return r.ratio
}

func (r *Renderer) SetOutputEncoding(enc render.Encoding) {
	r.enc = enc
}

func (r *Renderer) OutputEncoding() render.Encoding {
	return r.enc
}

func (r *Renderer) Image() *image.RGBA {
	return r.out
}

func (r *Renderer) supersample() int {
	if r.Antialias {
		return 2
	}
	return 1
}

// buffers sizes the output, sample and depth buffers, returning the
// sample buffer size.
func (r *Renderer) buffers() (int, int) {
	w, h := render.BufferSize(r.width, r.height, r.ratio)
	ss := r.supersample()
	bw, bh := w*ss, h*ss
	if r.out == nil || r.out.Rect.Dx() != w || r.out.Rect.Dy() != h {
		r.out = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	switch {
	case ss == 1:
		r.buf = r.out
	case r.buf == nil || r.buf == r.out || r.buf.Rect.Dx() != bw || r.buf.Rect.Dy() != bh:
		r.buf = image.NewRGBA(image.Rect(0, 0, bw, bh))
	}
	if len(r.depth) != bw*bh {
		r.depth = make([]float32, bw*bh)
	}
	return bw, bh
}

// Render draws the scene as seen by the camera into [Renderer.Image].
func (r *Renderer) Render(sc *xyz.Scene, cam *xyz.Camera) {
	r.Info = Info{Frame: r.Info.Frame + 1}
	bw, bh := r.buffers()
	if bw == 0 || bh == 0 {
		return
	}
	sc.UpdateWorldMatrices()
	cam.UpdateProjectionMatrix()
	cam.UpdateMatrix()
	vp := cam.ViewProjection()
	lt := newLighting(sc)

	r.tris = r.tris[:0]
	sc.Walk(func(n xyz.Node) bool {
		if n.AsNode().Hidden {
			return false
		}
		if sld, ok := n.(*xyz.Solid); ok && sld.Mesh != nil {
			r.addSolid(sld, vp, lt, float32(bw), float32(bh))
		}
		return true
	})
	r.Info.Drawn = len(r.tris)

	r.clear(sc.Background)
	r.fill(bw, bh)
	if r.buf != r.out {
		draw.BiLinear.Scale(r.out, r.out.Bounds(), r.buf, r.buf.Bounds(), draw.Src, nil)
	}
}

func (r *Renderer) encode(c colors.Linear) (uint8, uint8, uint8) {
	if r.enc == render.Linear {
		return encodeLinear(c.R), encodeLinear(c.G), encodeLinear(c.B)
	}
	return encodeSRGB(c.R), encodeSRGB(c.G), encodeSRGB(c.B)
}

// clear fills the sample buffer with the background and resets depth.
func (r *Renderer) clear(bg color.RGBA) {
	if r.enc == render.Linear {
		bg.R, bg.G, bg.B = r.encode(colors.ToLinear(bg))
	}
	pix := r.buf.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = bg.R, bg.G, bg.B, 255
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
	r.depth[0] = math32.Infinity
	for n := 1; n < len(r.depth); n *= 2 {
		copy(r.depth[n:], r.depth[:n])
	}
}

// addSolid lights, clips, culls and projects the triangles of a solid.
func (r *Renderer) addSolid(sld *xyz.Solid, vp *math32.Matrix4, lt *lighting, bw, bh float32) {
	ms := sld.Mesh.AsMeshBase()
	model := &sld.Pose.WorldMatrix
	mvp := vp.Mul(model)
	nmat := model.NormalMatrix()
	albedo := colors.ToLinear(sld.Material.Color)
	emissive := colors.ToLinear(sld.Material.Emissive)
	r.Info.Solids++

	var vs [3]clipVert
	var poly [4]clipVert
	var sp [4]screenVert
	for i := range ms.NumTriangles() {
		r.Info.Triangles++
		a, b, c := ms.Triangle(i)
		idx := [3]uint32{a, b, c}
		for k, ix := range idx {
			p, w := mvp.MulVector3AsClip(ms.Positions[ix])
			vs[k] = clipVert{x: p.X, y: p.Y, z: p.Z, w: w}
			vs[k].bary[k] = 1
		}
		if outside(&vs) {
			continue
		}
		n := clipNear(&vs, &poly)
		if n == 0 {
			continue
		}
		var area float32
		for k := range n {
			sp[k] = project(poly[k], bw, bh)
		}
		for k := range n {
			j := (k + 1) % n
			area += sp[k].x*sp[j].y - sp[j].x*sp[k].y
		}
		// front faces wind clockwise on screen, with y down
		if area == 0 || (sld.Material.CullBack && area > 0) {
			if area > 0 {
				r.Info.Culled++
			}
			continue
		}

		var cols [3]colors.Linear
		var wp [3]math32.Vector3
		for k, ix := range idx {
			wp[k] = ms.Positions[ix].MulMatrix4AsPoint(model)
		}
		if sld.Material.FlatShading {
			fn := wp[1].Sub(wp[0]).Cross(wp[2].Sub(wp[0])).Normal()
			ctr := wp[0].Add(wp[1]).Add(wp[2]).DivScalar(3)
			c := lt.shade(albedo, emissive, ctr, fn, (vs[0].w+vs[1].w+vs[2].w)/3)
			cols = [3]colors.Linear{c, c, c}
		} else {
			for k, ix := range idx {
				nrm := ms.Normals[ix].MulMatrix4AsVector(nmat).Normal()
				cols[k] = lt.shade(albedo, emissive, wp[k], nrm, vs[k].w)
			}
		}
		for k := range n {
			bc := poly[k].bary
			col := cols[0].Scale(bc[0]).Add(cols[1].Scale(bc[1])).Add(cols[2].Scale(bc[2]))
			sp[k].col = col.Scale(sp[k].iw)
		}
		for k := 1; k+1 < n; k++ {
			if t, ok := newScreenTri(sp[0], sp[k], sp[k+1], bw, bh); ok {
				r.tris = append(r.tris, t)
			}
		}
	}
}

// fill rasterizes the collected triangles in parallel row bands.
func (r *Renderer) fill(bw, bh int) {
	if len(r.tris) == 0 {
		return
	}
	procs := runtime.GOMAXPROCS(0)
	bands := min(bh, 4*procs)
	rows := (bh + bands - 1) / bands
	var g errgroup.Group
	g.SetLimit(procs)
	for y0 := 0; y0 < bh; y0 += rows {
		y1 := min(y0+rows, bh)
		g.Go(func() error {
			r.fillBand(bw, y0, y1)
			return nil
		})
	}
	g.Wait()
}
