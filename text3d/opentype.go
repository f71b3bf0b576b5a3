// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// OpenType is a [Font] backed by an OpenType (.ttf, .otf) face.
type OpenType struct {
	face *font.Face

	mu     sync.Mutex
	glyphs map[rune]*Glyph
}

// ParseOpenType parses OpenType font data.
func ParseOpenType(data []byte) (*OpenType, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text3d: opentype: %w", err)
	}
	return &OpenType{face: face, glyphs: map[rune]*Glyph{}}, nil
}

func (ot *OpenType) UnitsPerEm() float32 {
	return float32(ot.face.Upem())
}

// LineHeight is the ascender minus the descender plus the line gap,
// falling back to 1.2 em for fonts without horizontal extents.
func (ot *OpenType) LineHeight() float32 {
	ext, ok := ot.face.FontHExtents()
	if !ok {
		return 1.2 * ot.UnitsPerEm()
	}
	return ext.Ascender - ext.Descender + ext.LineGap
}

func (ot *OpenType) Glyph(r rune) (*Glyph, bool) {
	ot.mu.Lock()
	defer ot.mu.Unlock()
	if g, ok := ot.glyphs[r]; ok {
		return g, g != nil
	}
	gid, ok := ot.face.NominalGlyph(r)
	if !ok {
		ot.glyphs[r] = nil
		return nil, false
	}
	g := &Glyph{Advance: ot.face.HorizontalAdvance(gid)}
	if outline, ok := ot.face.GlyphData(gid).(font.GlyphOutline); ok {
		for _, s := range outline.Segments {
			a := s.Args
			switch s.Op {
			case opentype.SegmentOpMoveTo:
				g.Path.MoveTo(a[0].X, a[0].Y)
			case opentype.SegmentOpLineTo:
				g.Path.LineTo(a[0].X, a[0].Y)
			case opentype.SegmentOpQuadTo:
				g.Path.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
			case opentype.SegmentOpCubeTo:
				g.Path.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
			}
		}
	}
	ot.glyphs[r] = g
	return g, true
}

// builtins are the fonts compiled into the binary, by name.
var builtins = map[string][]byte{
	"lmsans10": lmsans10regular.TTF,
}

// Builtin returns the named font compiled into the binary.
func Builtin(name string) (*OpenType, error) {
	data, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("text3d: no builtin font named %q", name)
	}
	return ParseOpenType(data)
}
