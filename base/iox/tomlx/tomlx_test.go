// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFog struct {
	Color   uint32
	Density float32
}

type testConfig struct {
	Variant string
	Pillars int
	Fog     testFog
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "forest.toml")
	c := testConfig{Variant: "markers", Pillars: 500, Fog: testFog{Color: 0xcccccc, Density: 0.002}}
	require.NoError(t, Save(&c, fn))

	var o testConfig
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, c, o)

	assert.Error(t, Open(&o, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, os.WriteFile(base, []byte("Variant = \"quotes\"\nPillars = 100\n"), 0o644))
	require.NoError(t, os.WriteFile(over, []byte("Pillars = 7\n"), 0o644))

	var c testConfig
	require.NoError(t, OpenFiles(&c, base, over))
	assert.Equal(t, "quotes", c.Variant)
	assert.Equal(t, 7, c.Pillars)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"c.toml": {Data: []byte("[Fog]\nDensity = 0.5\n")}}
	var c testConfig
	require.NoError(t, OpenFS(&c, fsys, "c.toml"))
	assert.Equal(t, float32(0.5), c.Fog.Density)

	b, err := WriteBytes(&c)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Density = 0.5")
}
