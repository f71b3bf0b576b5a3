// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "forest.toml")
	require.NoError(t, os.WriteFile(file, []byte("FogDensity = 0.002\n"), 0666))

	st, app, _ := newForest(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, st.Watch(ctx, "quotes", file))

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("FogDensity = 1\n"), 0666))
	require.NoError(t, os.WriteFile(file, []byte("FogDensity = 0.01\nBackground = 0x112233\nPillarCount = 7\n"), 0666))

	require.Eventually(t, func() bool {
		app.RunPosted()
		return st.Scene.Fog.Density == 0.01
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, uint8(0x11), st.Scene.Background.R)
	assert.Equal(t, float32(0.01), st.Config.FogDensity)
	// only the atmosphere is live
	assert.Equal(t, 100, st.Config.PillarCount)
}

func TestWatchMissingDir(t *testing.T) {
	st, _, _ := newForest(t, testConfig())
	err := st.Watch(context.Background(), "quotes", filepath.Join(t.TempDir(), "nope", "forest.toml"))
	assert.Error(t, err)
}
