// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"log/slog"
	"sync"

	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/xyz"
)

// TextOptions parametrize text geometry. Lengths are in the same
// units as Size.
type TextOptions struct {

	// Size is the font size: one em.
	Size float32 `default:"80"`

	// Depth is the extrusion depth of the body, excluding bevels.
	Depth float32 `default:"50"`

	// CurveSegments is the number of line segments per outline curve.
	CurveSegments int `default:"12"`

	// BevelEnabled turns on beveled edges.
	BevelEnabled bool `default:"true"`

	// BevelThickness is how far the bevel reaches beyond each face.
	BevelThickness float32 `default:"5"`

	// BevelSize is how far the bevel grows the outline.
	BevelSize float32 `default:"4"`

	// BevelOffset is the outline growth at which the bevel starts.
	BevelOffset float32 `default:"0"`

	// BevelSegments is the number of steps in each bevel.
	BevelSegments int `default:"5"`
}

// Defaults sets the default text options.
func (o *TextOptions) Defaults() {
	*o = TextOptions{
		Size:           80,
		Depth:          50,
		CurveSegments:  12,
		BevelEnabled:   true,
		BevelThickness: 5,
		BevelSize:      4,
		BevelSegments:  5,
	}
}

// NewTextGeometry returns a mesh of the given text, extruded along +z.
// Glyphs are laid out from the origin along +x on the baseline, and
// every '\n' starts a new line one [Font.LineHeight] lower. Runes
// missing from the font are drawn as '?', or skipped if that is missing
// too. The mesh bounds are computed.
func NewTextGeometry(name, text string, f Font, opts *TextOptions) *xyz.GenMesh {
	ms := xyz.NewGenMesh(name)
	scale := opts.Size / f.UnitsPerEm()
	lineHeight := f.LineHeight() * scale
	var x, y float32
	for _, r := range text {
		if r == '\n' {
			x = 0
			y -= lineHeight
			continue
		}
		gs := cachedGlyph(f, r, opts.CurveSegments)
		if gs == nil {
			continue
		}
		for i := range gs.shapes {
			sh := gs.shapes[i].transform(scale, math32.Vec2(x, y))
			extrudeShape(&ms.MeshBase, &sh, gs.tris[i], opts)
		}
		x += gs.advance * scale
	}
	ms.ComputeBounds()
	return ms
}

// transform returns a copy of the shape scaled then translated.
func (sh *Shape) transform(scale float32, off math32.Vector2) Shape {
	tr := func(pts []math32.Vector2) []math32.Vector2 {
		res := make([]math32.Vector2, len(pts))
		for i, p := range pts {
			res[i] = p.MulScalar(scale).Add(off)
		}
		return res
	}
	out := Shape{Contour: tr(sh.Contour)}
	for _, h := range sh.Holes {
		out.Holes = append(out.Holes, tr(h))
	}
	return out
}

// glyphShapes is a glyph flattened into shapes and triangulated,
// in font units.
type glyphShapes struct {
	shapes  []Shape
	tris    [][]uint32
	advance float32
}

type glyphKey struct {
	font          Font
	r             rune
	curveSegments int
}

// glyphCache holds the triangulated glyphs of every font used so far.
// Font implementations must be comparable.
var glyphCache = struct {
	sync.Mutex
	glyphs map[glyphKey]*glyphShapes
}{glyphs: map[glyphKey]*glyphShapes{}}

func cachedGlyph(f Font, r rune, curveSegments int) *glyphShapes {
	key := glyphKey{f, r, curveSegments}
	glyphCache.Lock()
	defer glyphCache.Unlock()
	if gs, ok := glyphCache.glyphs[key]; ok {
		return gs
	}
	g, ok := f.Glyph(r)
	if !ok {
		slog.Warn("text3d: character missing from font", "char", string(r))
		g, ok = f.Glyph('?')
	}
	var gs *glyphShapes
	if ok {
		gs = &glyphShapes{advance: g.Advance}
		gs.shapes = Shapes(g.Path.Contours(curveSegments))
		for i := range gs.shapes {
			gs.tris = append(gs.tris, gs.shapes[i].Triangulate())
		}
	}
	glyphCache.glyphs[key] = gs
	return gs
}
