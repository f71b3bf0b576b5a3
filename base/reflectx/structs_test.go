// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type innerDefaults struct {
	Near float32 `default:"1"`
	Far  float32 `default:"1000"`
}

type testDefaults struct {
	Name       string        `default:"forest"`
	Count      int           `default:"100"`
	Color      uint32        `default:"0xcccccc"`
	Density    float64       `default:"0.002"`
	Enabled    bool          `default:"true"`
	Delay      time.Duration `default:"2500ms"`
	Offsets    []float32     `default:"[1, 2, 3]"`
	Camera     innerDefaults
	CameraPtr  *innerDefaults
	NoDefault  string
	unexported int `default:"4"`
}

func TestSetFromDefaultTags(t *testing.T) {
	d := &testDefaults{NoDefault: "kept", CameraPtr: &innerDefaults{}}
	require.NoError(t, SetFromDefaultTags(d))
	assert.Equal(t, "forest", d.Name)
	assert.Equal(t, 100, d.Count)
	assert.Equal(t, uint32(0xcccccc), d.Color)
	assert.Equal(t, 0.002, d.Density)
	assert.True(t, d.Enabled)
	assert.Equal(t, 2500*time.Millisecond, d.Delay)
	assert.Equal(t, []float32{1, 2, 3}, d.Offsets)
	assert.Equal(t, innerDefaults{Near: 1, Far: 1000}, d.Camera)
	assert.Equal(t, innerDefaults{Near: 1, Far: 1000}, *d.CameraPtr)
	assert.Equal(t, "kept", d.NoDefault)
	assert.Equal(t, 0, d.unexported)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.NoError(t, SetFromDefaultTags((*testDefaults)(nil)))
	assert.Error(t, SetFromDefaultTags(new(int)))
}

func TestSetFromDefaultTagsError(t *testing.T) {
	type bad struct {
		Count int    `default:"many"`
		Name  string `default:"ok"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "field Count")
	assert.Equal(t, "ok", b.Name)
}

func TestDefaultTag(t *testing.T) {
	def, ok := DefaultTag(testDefaults{}, "Count")
	assert.True(t, ok)
	assert.Equal(t, "100", def)
	_, ok = DefaultTag(&testDefaults{}, "NoDefault")
	assert.False(t, ok)
	_, ok = DefaultTag(3, "Count")
	assert.False(t, ok)
}

func TestSetFromString(t *testing.T) {
	var i8 int8
	assert.Error(t, SetFromString(&i8, "300"))
	assert.Error(t, SetFromString(i8, "3"))
	var ch chan int
	assert.Error(t, SetFromString(&ch, "3"))
	m := map[string]int{}
	require.NoError(t, SetFromString(&m, "{'a': 1}"))
	assert.Equal(t, map[string]int{"a": 1}, m)
}
