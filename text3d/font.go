// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text3d turns strings into extruded, beveled 3D meshes
// from vector font outlines.
package text3d

import (
	"cogentcore.org/quoteforest/math32"
)

// Font is a source of vector glyph outlines.
// All of its measurements are in font units.
type Font interface {

	// UnitsPerEm is the number of font units corresponding to the
	// requested text size.
	UnitsPerEm() float32

	// LineHeight is the distance between two baselines.
	LineHeight() float32

	// Glyph returns the glyph for the given rune,
	// and false if the font does not have one.
	Glyph(r rune) (*Glyph, bool)
}

// Glyph is the outline and advance of one character.
type Glyph struct {

	// Advance is the horizontal distance to the next glyph origin.
	Advance float32

	// Path is the outline, with y growing up from the baseline.
	Path Path
}

// SegmentOp is a path drawing command.
type SegmentOp uint8

const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubeTo
)

// Segment is one drawing command of a [Path].
// Args holds the points used by Op, in order: the end point for
// MoveTo and LineTo; the control point then the end point for QuadTo;
// the two control points then the end point for CubeTo.
type Segment struct {
	Op   SegmentOp
	Args [3]math32.Vector2
}

// End returns the point the segment finishes at.
func (s Segment) End() math32.Vector2 {
	switch s.Op {
	case QuadTo:
		return s.Args[1]
	case CubeTo:
		return s.Args[2]
	}
	return s.Args[0]
}

// Path is a sequence of segments. Every MoveTo starts a new
// sub-path; sub-paths are implicitly closed.
type Path []Segment

func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, Segment{Op: MoveTo, Args: [3]math32.Vector2{math32.Vec2(x, y)}})
}

func (p *Path) LineTo(x, y float32) {
	*p = append(*p, Segment{Op: LineTo, Args: [3]math32.Vector2{math32.Vec2(x, y)}})
}

func (p *Path) QuadTo(cx, cy, x, y float32) {
	*p = append(*p, Segment{Op: QuadTo, Args: [3]math32.Vector2{math32.Vec2(cx, cy), math32.Vec2(x, y)}})
}

func (p *Path) CubeTo(cx1, cy1, cx2, cy2, x, y float32) {
	*p = append(*p, Segment{Op: CubeTo, Args: [3]math32.Vector2{math32.Vec2(cx1, cy1), math32.Vec2(cx2, cy2), math32.Vec2(x, y)}})
}

// Contours flattens the path into closed polylines, sampling every curve
// with the given number of line segments. Repeated points, including a
// final point equal to the first, are dropped, and contours with fewer
// than three points are omitted.
func (p Path) Contours(curveSegments int) [][]math32.Vector2 {
	if curveSegments < 1 {
		curveSegments = 1
	}
	var res [][]math32.Vector2
	var cur []math32.Vector2
	flush := func() {
		if n := len(cur); n > 1 && cur[n-1].IsEqual(cur[0]) {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			res = append(res, cur)
		}
		cur = nil
	}
	add := func(pt math32.Vector2) {
		if n := len(cur); n > 0 && cur[n-1].IsEqual(pt) {
			return
		}
		cur = append(cur, pt)
	}
	var last math32.Vector2
	for _, s := range p {
		switch s.Op {
		case MoveTo:
			flush()
			add(s.Args[0])
		case LineTo:
			add(s.Args[0])
		case QuadTo:
			for i := 1; i <= curveSegments; i++ {
				add(quadAt(last, s.Args[0], s.Args[1], float32(i)/float32(curveSegments)))
			}
		case CubeTo:
			for i := 1; i <= curveSegments; i++ {
				add(cubeAt(last, s.Args[0], s.Args[1], s.Args[2], float32(i)/float32(curveSegments)))
			}
		}
		last = s.End()
	}
	flush()
	return res
}

func quadAt(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	k := 1 - t
	return p0.MulScalar(k * k).Add(p1.MulScalar(2 * k * t)).Add(p2.MulScalar(t * t))
}

func cubeAt(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	k := 1 - t
	return p0.MulScalar(k * k * k).
		Add(p1.MulScalar(3 * k * k * t)).
		Add(p2.MulScalar(3 * k * t * t)).
		Add(p3.MulScalar(t * t * t))
}
