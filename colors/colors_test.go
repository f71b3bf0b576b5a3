// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	assert.Equal(t, color.RGBA{0xcc, 0xcc, 0xcc, 255}, FromHex(0xcccccc))
	assert.Equal(t, color.RGBA{0x8f, 0x18, 0x56, 255}, FromHex(0x8f1856))
	assert.Equal(t, uint32(0x8f1856), ToHex(FromHex(0x8f1856)))
	assert.Equal(t, FromRGB(1, 2, 3), FromHex(0x010203))
}

func TestLinearRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xffffff, 0xcccccc, 0x8f1856, 0xeeeeee} {
		c := FromHex(hex)
		assert.Equal(t, c, ToLinear(c).SRGB(), "%06x", hex)
	}
	assert.InDelta(t, 0.2159, ToLinear(FromHex(0x808080)).R, 0.001)
	assert.Equal(t, FromHex(0xffffff), Linear{2, 2, 2}.SRGB())
}

func TestLinearOps(t *testing.T) {
	a := Linear{0.5, 0.25, 1}
	assert.Equal(t, Linear{1, 0.5, 2}, a.Scale(2))
	assert.Equal(t, Linear{0.25, 0.0625, 1}, a.Mul(a))
	assert.Equal(t, Linear{1, 0.5, 2}, a.Add(a))
	assert.Equal(t, a, a.Lerp(Linear{}, 0))
	assert.Equal(t, AsRGBA(color.Gray{0x80}), color.RGBA{0x80, 0x80, 0x80, 255})
}
