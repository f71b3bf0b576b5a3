// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesOnPaths(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(b, "forest.toml"), []byte("Pillars = 3\n"), 0o644))

	found := FindFilesOnPaths([]string{a, b}, "forest.toml", "missing.toml")
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(b, "forest.toml"), found[0])

	abs := FindFilesOnPaths(nil, found[0])
	assert.Equal(t, found, abs)

	ok, err := FileExists(b)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{"fonts/a.json": {Data: []byte("{}")}}
	ok, err := FileExistsFS(fsys, "fonts/a.json")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "fonts/b.json")
	assert.NoError(t, err)
	assert.False(t, ok)

	dfs, name, err := DirFS(filepath.Join(t.TempDir(), "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x.txt", name)
	assert.NotNil(t, dfs)
}
