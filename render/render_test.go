// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferSize(t *testing.T) {
	for _, tc := range []struct {
		w, h   int
		ratio  float32
		bw, bh int
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 1600, 1200},
		{801, 601, 1.5, 1202, 902},
		{1, 1, 0.25, 1, 1},
		{0, 10, 2, 0, 20},
		{10, 10, 0, 10, 10},
	} {
		bw, bh := BufferSize(tc.w, tc.h, tc.ratio)
		assert.Equal(t, tc.bw, bw, "%dx%d@%v", tc.w, tc.h, tc.ratio)
		assert.Equal(t, tc.bh, bh, "%dx%d@%v", tc.w, tc.h, tc.ratio)
	}
	assert.Equal(t, "sRGB", SRGB.String())
}
