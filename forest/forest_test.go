// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest_test

import (
	"context"
	"image"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/quoteforest/base/errors"
	"cogentcore.org/quoteforest/driver/headless"
	"cogentcore.org/quoteforest/forest"
	"cogentcore.org/quoteforest/logx"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/quotes"
	"cogentcore.org/quoteforest/render"
	"cogentcore.org/quoteforest/text3d"
	"cogentcore.org/quoteforest/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a renderer that only records its settings and frames.
type recorder struct {
	log    *[]string
	w, h   int
	ratio  float32
	enc    render.Encoding
	frames int
}

func (r *recorder) Size() (int, int)                   { return r.w, r.h }
func (r *recorder) SetPixelRatio(ratio float32)         { r.ratio = ratio }
func (r *recorder) PixelRatio() float32                 { return r.ratio }
func (r *recorder) SetSize(w, h int)                    { r.w, r.h = w, h }
func (r *recorder) SetOutputEncoding(e render.Encoding) { r.enc = e }
func (r *recorder) OutputEncoding() render.Encoding     { return r.enc }
func (r *recorder) Image() *image.RGBA                  { return image.NewRGBA(image.Rectangle{}) }

func (r *recorder) Render(sc *xyz.Scene, cam *xyz.Camera) {
	r.frames++
	if r.log != nil {
		*r.log = append(*r.log, "render")
	}
}

type mixer struct {
	log    *[]string
	deltas []float32
}

func (m *mixer) Update(delta float32) {
	m.deltas = append(m.deltas, delta)
	*m.log = append(*m.log, "mixer")
}

// hook is a scene node called before every frame.
type hook struct {
	xyz.NodeBase
	log *[]string
}

func (h *hook) OnBeforeRender(s xyz.Surface, sc *xyz.Scene, cam *xyz.Camera) {
	*h.log = append(*h.log, "hook")
}

// testCorpus has three quotes of three words each.
var testCorpus = quotes.Corpus{
	{Author: "A", Text: "one two three"},
	{Author: "B", Text: "four five six"},
	{Author: "C", Text: "seven eight nine"},
}

// emptyFS finds no font files; builtin fonts still load.
var emptyFS = forest.WithLoader(&text3d.FileLoader{FS: fstest.MapFS{}})

func testConfig() *forest.Config {
	cfg := forest.NewConfig()
	cfg.Seed = 1
	return cfg
}

func newForest(t *testing.T, cfg *forest.Config, opts ...forest.Option) (*forest.State, *headless.App, *recorder) {
	t.Helper()
	app := headless.New(800, 600)
	app.FrameInterval = 100 * time.Millisecond
	rec := &recorder{}
	opts = append([]forest.Option{forest.WithRenderer(rec), forest.WithCorpus(testCorpus)}, opts...)
	st, err := forest.New(app, app, app, cfg, opts...)
	require.NoError(t, err)
	return st, app, rec
}

func waitDone(t *testing.T, app *headless.App, g *forest.Generation) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.WaitFor(ctx, g.Done()))
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestNewEnvironment(t *testing.T) {
	app := headless.New(800, 600)
	_, err := forest.New(nil, app, app, nil)
	assert.ErrorIs(t, err, forest.ErrEnvironmentUnavailable)
	_, err = forest.New(app, nil, app, nil)
	assert.ErrorIs(t, err, forest.ErrEnvironmentUnavailable)
	_, err = forest.New(app, app, nil, nil)
	assert.ErrorIs(t, err, forest.ErrEnvironmentUnavailable)
	assert.Empty(t, app.Elements())

	cfg := testConfig()
	cfg.Far = cfg.Near
	_, err = forest.New(app, app, app, cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.CorpusPath = "testdata/missing.yaml"
	_, err = forest.New(app, app, app, cfg)
	assert.ErrorIs(t, err, forest.ErrAssetLoad)
}

func TestBootstrap(t *testing.T) {
	app := headless.New(800, 600)
	app.SetPixelRatio(2)
	rec := &recorder{}
	st, err := forest.New(app, app, app, nil, forest.WithRenderer(rec), forest.WithCorpus(testCorpus))
	require.NoError(t, err)

	assert.Equal(t, []any{rec, st.Stats}, app.Elements())
	assert.Equal(t, float32(2), rec.PixelRatio())
	w, h := rec.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, render.SRGB, rec.OutputEncoding())

	cam := st.Camera
	assert.Equal(t, float32(60), cam.FOV)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-6)
	assert.Equal(t, float32(1), cam.Near)
	assert.Equal(t, float32(1000), cam.Far)
	assert.InDelta(t, 5, cam.Pose.Pos.X, 1e-3)
	assert.InDelta(t, 2, cam.Pose.Pos.Y, 1e-3)
	assert.InDelta(t, 8, cam.Pose.Pos.Z, 1e-3)

	assert.Equal(t, math32.Vec3(0, 0.5, 0), st.Controls.Target)
	assert.True(t, st.Controls.EnablePan)
	assert.True(t, st.Controls.EnableDamping)

	sc := st.Scene
	assert.Equal(t, uint8(0xcc), sc.Background.R)
	require.NotNil(t, sc.Fog)
	assert.Equal(t, float32(0.002), sc.Fog.Density)
	require.Len(t, sc.Lights, 1)
	amb, ok := sc.Lights[0].(*xyz.AmbientLight)
	require.True(t, ok)
	assert.Equal(t, uint8(0x8f), amb.Color.R)
	assert.Equal(t, float32(0.001), amb.Intensity)
	assert.Equal(t, 0, sc.NumNodes())
	assert.Equal(t, testCorpus, st.Corpus())
}

func TestAtmosphereOwnConfig(t *testing.T) {
	cfg := testConfig()
	st, _, _ := newForest(t, cfg)
	assert.NotSame(t, cfg, st.Config)

	next := testConfig()
	next.FogDensity = 0.05
	next.Background = 0x112233
	st.ApplyAtmosphere(next)
	assert.Equal(t, float32(0.05), st.Config.FogDensity)
	assert.Equal(t, float32(0.05), st.Scene.Fog.Density)
	assert.Equal(t, float32(0.002), cfg.FogDensity)
	assert.Equal(t, uint32(0xcccccc), cfg.Background)
}

func TestResize(t *testing.T) {
	st, app, rec := newForest(t, testConfig())
	app.Resize(800, 600)
	app.Resize(1920, 1080)
	assert.InDelta(t, 1920.0/1080.0, st.Camera.Aspect, 1e-6)
	w, h := rec.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	app.Resize(1920, 0)
	assert.InDelta(t, 1920.0/1080.0, st.Camera.Aspect, 1e-6)
	w, h = rec.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	app.SetPixelRatio(2)
	app.Resize(1024, 768)
	assert.Equal(t, float32(2), rec.PixelRatio())
	assert.InDelta(t, 1024.0/768.0, st.Camera.Aspect, 1e-6)
}

func TestPillars(t *testing.T) {
	cfg := testConfig()
	st, app, _ := newForest(t, cfg, emptyFS)
	g := st.Generate(context.Background())
	assert.Same(t, g, st.Generate(context.Background()))

	require.Len(t, st.Pillars, 100)
	assert.Equal(t, 100, st.Scene.NumNodes())
	for _, p := range st.Pillars {
		assert.GreaterOrEqual(t, p.Pos.X, float32(-800))
		assert.LessOrEqual(t, p.Pos.X, float32(800))
		assert.GreaterOrEqual(t, p.Pos.Z, float32(-800))
		assert.LessOrEqual(t, p.Pos.Z, float32(800))
		assert.Equal(t, float32(0), p.Pos.Y)
		assert.GreaterOrEqual(t, p.Scale.Y, float32(10))
		assert.LessOrEqual(t, p.Scale.Y, float32(90))
		assert.Equal(t, float32(20), p.Scale.X)
		assert.Equal(t, float32(20), p.Scale.Z)
		assert.GreaterOrEqual(t, p.Yaw, float32(0))
		assert.LessOrEqual(t, p.Yaw, float32(3))
	}

	var mesh xyz.Mesh
	st.Scene.Walk(func(n xyz.Node) bool {
		sld := n.(*xyz.Solid)
		assert.True(t, sld.Pose.IsFrozen())
		if mesh == nil {
			mesh = sld.Mesh
		}
		assert.Same(t, mesh, sld.Mesh)
		return true
	})
	// the shared box rests on the ground
	assert.Equal(t, float32(0), mesh.AsMeshBase().BBox.BBox.Min.Y)

	other, _, _ := newForest(t, testConfig(), emptyFS)
	other.Generate(context.Background())
	assert.Equal(t, st.Pillars, other.Pillars)
	waitDone(t, app, g)
}

func TestQuoteText(t *testing.T) {
	st, app, _ := newForest(t, testConfig())
	g := st.Generate(context.Background())
	waitDone(t, app, g)
	require.NoError(t, g.Err())

	// 3 quotes in blocks of 100 make one text entity
	require.Len(t, st.TextEntities, 1)
	sld, ok := st.Scene.SolidByID(st.TextEntities[0])
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0.05, 0.05, 0.05), sld.Pose.Scale)
	assert.Equal(t, float32(0), sld.Pose.Pos.Y)

	// each word is on its own line
	font, err := text3d.Builtin("lmsans10")
	require.NoError(t, err)
	var stacked []math32.Box3
	laid := quotes.StackVertically(testCorpus)
	require.Len(t, laid, 3)
	for _, q := range laid {
		assert.Equal(t, 0, strings.Count(q.Text, " "))
		assert.Equal(t, 2, strings.Count(q.Text, "\n"))
		stacked = append(stacked, text3d.NewTextGeometry("want", q.Text, font, &st.Config.Text).BBox.BBox)
	}
	assert.Contains(t, stacked, sld.Mesh.AsMeshBase().BBox.BBox)
	r, ok := sld.BoundingRadius()
	require.True(t, ok)
	assert.Greater(t, r, float32(0))

	require.Len(t, st.Scene.Lights, 5)
	at := math32.Vec3(sld.Pose.Pos.X, 0, sld.Pose.Pos.Z)
	for i, off := range st.Config.LightOffsets {
		pl, ok := st.Scene.Lights[i+1].(*xyz.PointLight)
		require.True(t, ok)
		assert.Equal(t, at.Add(off), pl.Pos)
		assert.Equal(t, uint8(0xff), pl.Color.R)
		assert.Equal(t, float32(100), pl.Distance)
	}
}

func TestMarkers(t *testing.T) {
	cfg, err := forest.Preset("markers")
	require.NoError(t, err)
	cfg.Seed = 3
	cfg.PillarCount = 50
	st, app, _ := newForest(t, cfg)
	g := st.Generate(context.Background())
	waitDone(t, app, g)
	require.NoError(t, g.Err())

	require.Len(t, st.TextEntities, 5)
	var mesh xyz.Mesh
	for i, id := range st.TextEntities {
		sld, ok := st.Scene.SolidByID(id)
		require.True(t, ok)
		p := st.Pillars[i*10]
		assert.Equal(t, p.Pos.X, sld.Pose.Pos.X)
		assert.Equal(t, p.Pos.Z, sld.Pose.Pos.Z)
		assert.Equal(t, float32(0.2), sld.Pose.Scale.X)
		if mesh == nil {
			mesh = sld.Mesh
		}
		assert.Same(t, mesh, sld.Mesh)
	}
	assert.Len(t, st.Scene.Lights, 1+5*4)
}

func TestFontFailure(t *testing.T) {
	cfg := testConfig()
	cfg.FontPath = "fonts/missing.json"
	st, app, rec := newForest(t, cfg, emptyFS)
	g := st.Generate(context.Background())
	waitDone(t, app, g)

	err := g.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, forest.ErrAssetLoad)
	var ae *forest.AssetLoadError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "fonts/missing.json", ae.Path)

	assert.Empty(t, st.TextEntities)
	assert.Len(t, st.Pillars, 100)
	assert.Equal(t, 100, st.Scene.NumNodes())

	app.Step()
	app.Step()
	assert.Equal(t, uint64(2), st.Frames())
	assert.Equal(t, 2, rec.frames)

	app.Advance(3 * time.Second)
	assert.True(t, isClosed(g.Positioned()))
}

func TestPositionDelay(t *testing.T) {
	st, app, _ := newForest(t, testConfig())
	g := st.Generate(context.Background())
	waitDone(t, app, g)
	require.Len(t, st.TextEntities, 1)
	sld, _ := st.Scene.SolidByID(st.TextEntities[0])

	assert.False(t, isClosed(g.Positioned()))
	assert.Equal(t, float32(0), sld.Pose.Pos.Y)

	app.Advance(2400 * time.Millisecond)
	assert.False(t, isClosed(g.Positioned()))
	assert.Equal(t, float32(0), sld.Pose.Pos.Y)

	app.Advance(100 * time.Millisecond)
	require.True(t, isClosed(g.Positioned()))
	r, _ := sld.BoundingRadius()
	assert.Equal(t, r/10, sld.Pose.Pos.Y)

	// positioning again is idempotent
	assert.Equal(t, 1, st.PositionText())
	assert.Equal(t, r/10, sld.Pose.Pos.Y)
}

func TestPositionElapsed(t *testing.T) {
	cfg := testConfig()
	cfg.PositionDelay = 0
	st, app, _ := newForest(t, cfg)
	g := st.Generate(context.Background())
	waitDone(t, app, g)
	assert.True(t, isClosed(g.Positioned()))
	sld, _ := st.Scene.SolidByID(st.TextEntities[0])
	r, _ := sld.BoundingRadius()
	assert.Equal(t, r/10, sld.Pose.Pos.Y)
}

func TestPositionMissing(t *testing.T) {
	cfg := testConfig()
	cfg.PositionDelay = 0
	st, app, _ := newForest(t, cfg)
	waitDone(t, app, st.Generate(context.Background()))
	require.True(t, st.Scene.Remove(st.TextEntities[0]))
	if logx.Debug {
		assert.Panics(t, func() { st.PositionText() })
		return
	}
	assert.Equal(t, 0, st.PositionText())
}

func TestLoop(t *testing.T) {
	var log []string
	mx := &mixer{log: &log}
	st, app, rec := newForest(t, testConfig(), forest.WithMixer(mx))
	rec.log = &log
	st.Scene.Add(&hook{log: &log})

	st.Start()
	st.Start()
	app.Step()
	assert.Equal(t, []string{"mixer", "hook", "render"}, log)
	assert.Equal(t, uint64(1), st.Frames())
	require.Len(t, mx.deltas, 1)
	assert.InDelta(t, 0.1, mx.deltas[0], 1e-6)

	app.Step()
	assert.Equal(t, uint64(2), st.Frames())
	assert.Equal(t, 2, rec.frames)
	assert.Equal(t, uint64(2), st.Stats.Snapshot().Frames)
	assert.InDelta(t, 0.2, st.Clock.Elapsed(), 1e-6)

	st.Stop()
	app.Step()
	app.Step()
	assert.Equal(t, uint64(2), st.Frames())
}

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := forest.NewClock(func() time.Time { return now })
	now = now.Add(250 * time.Millisecond)
	assert.InDelta(t, 0.25, c.Delta(), 1e-6)
	assert.InDelta(t, 0, c.Delta(), 1e-6)
	now = now.Add(time.Second)
	assert.InDelta(t, 1.25, c.Elapsed(), 1e-6)
}
