// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text3d

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed typeface.schema.json
var typefaceSchemaText string

var typefaceSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("typeface.schema.json", typefaceSchemaText)
})

// Typeface is a font in the typeface JSON format, as written by
// the facetype.js converter. Outlines are stored as compact command
// strings ("m x y l x y q x y cx cy b x y c1x c1y c2x c2y"), where
// curve commands list their end point before their control points.
type Typeface struct {
	FamilyName         string  `json:"familyName"`
	Resolution         float32 `json:"resolution"`
	Ascender           float32 `json:"ascender"`
	Descender          float32 `json:"descender"`
	UnderlinePosition  float32 `json:"underlinePosition"`
	UnderlineThickness float32 `json:"underlineThickness"`

	BoundingBox struct {
		XMin float32 `json:"xMin"`
		XMax float32 `json:"xMax"`
		YMin float32 `json:"yMin"`
		YMax float32 `json:"yMax"`
	} `json:"boundingBox"`

	Glyphs map[string]TypefaceGlyph `json:"glyphs"`

	glyphs map[rune]*Glyph
}

// TypefaceGlyph is one glyph record of a [Typeface].
type TypefaceGlyph struct {
	HA      float32 `json:"ha"`
	XMin    float32 `json:"x_min"`
	XMax    float32 `json:"x_max"`
	Outline string  `json:"o"`
}

// ParseTypeface decodes and validates typeface JSON data.
func ParseTypeface(data []byte) (*Typeface, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("text3d: typeface: %w", err)
	}
	schema, err := typefaceSchema()
	if err != nil {
		return nil, fmt.Errorf("text3d: typeface schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("text3d: invalid typeface: %w", err)
	}
	tf := &Typeface{}
	if err := json.Unmarshal(data, tf); err != nil {
		return nil, fmt.Errorf("text3d: typeface: %w", err)
	}
	tf.glyphs = make(map[rune]*Glyph, len(tf.Glyphs))
	for key, g := range tf.Glyphs {
		r, n := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || n != len(key) {
			continue
		}
		path, err := parseOutline(g.Outline)
		if err != nil {
			return nil, fmt.Errorf("text3d: typeface glyph %q: %w", key, err)
		}
		tf.glyphs[r] = &Glyph{Advance: g.HA, Path: path}
	}
	return tf, nil
}

func (tf *Typeface) UnitsPerEm() float32 {
	return tf.Resolution
}

// LineHeight is the bounding box height plus the underline thickness.
func (tf *Typeface) LineHeight() float32 {
	return tf.BoundingBox.YMax - tf.BoundingBox.YMin + tf.UnderlineThickness
}

func (tf *Typeface) Glyph(r rune) (*Glyph, bool) {
	g, ok := tf.glyphs[r]
	return g, ok
}

// parseOutline parses a typeface outline command string.
func parseOutline(o string) (Path, error) {
	fields := strings.Fields(o)
	var p Path
	i := 0
	nums := func(n int) ([]float32, error) {
		if i+n > len(fields) {
			return nil, fmt.Errorf("truncated outline at field %d", i)
		}
		res := make([]float32, n)
		for k := range n {
			v, err := strconv.ParseFloat(fields[i+k], 32)
			if err != nil {
				return nil, err
			}
			res[k] = float32(v)
		}
		i += n
		return res, nil
	}
	for i < len(fields) {
		cmd := fields[i]
		i++
		switch cmd {
		case "m":
			v, err := nums(2)
			if err != nil {
				return nil, err
			}
			p.MoveTo(v[0], v[1])
		case "l":
			v, err := nums(2)
			if err != nil {
				return nil, err
			}
			p.LineTo(v[0], v[1])
		case "q":
			v, err := nums(4)
			if err != nil {
				return nil, err
			}
			p.QuadTo(v[2], v[3], v[0], v[1])
		case "b":
			v, err := nums(6)
			if err != nil {
				return nil, err
			}
			p.CubeTo(v[2], v[3], v[4], v[5], v[0], v[1])
		case "z":
		default:
			return nil, fmt.Errorf("unknown outline command %q", cmd)
		}
	}
	return p, nil
}
