// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package forest builds and runs the quote forest: a field of randomly
// placed pillars with extruded quotes between them, seen through a
// damped map camera.
//
// A [State] is created with [New] on a host that provides a
// [Container], a [Viewport] and a [Scheduler]. [State.Generate] then
// adds the pillars, starts the render loop and loads the font; once the
// font is available the text is added and, after the settle delay,
// rested on the ground by [State.PositionText]. All methods of State
// must be called on the host thread.
package forest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/quoteforest/base/randx"
	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/controls"
	"cogentcore.org/quoteforest/quotes"
	"cogentcore.org/quoteforest/render"
	"cogentcore.org/quoteforest/render/raster"
	"cogentcore.org/quoteforest/stats"
	"cogentcore.org/quoteforest/text3d"
	"cogentcore.org/quoteforest/xyz"
)

// State is a running forest scene.
type State struct {

	// Config has the parameters the forest was created with.
	Config *Config

	Camera   *xyz.Camera
	Renderer render.Renderer
	Controls *controls.MapControls
	Clock    *Clock
	Stats    *stats.Stats
	Scene    *xyz.Scene

	// Mixer, if set, is advanced by the frame time on every frame.
	Mixer Mixer

	// TextEntities are the ids of the text solids in [State.Scene].
	TextEntities []xyz.NodeID

	// Pillars are the placements made by the pillar pass.
	Pillars []PillarSpec

	container Container
	viewport  Viewport
	sched     Scheduler
	loader    text3d.Loader
	corpus    quotes.Corpus
	rand      randx.Rand
	ambient   *xyz.AmbientLight
	initTime  time.Time
	gen       *Generation

	startOnce sync.Once
	running   bool
	frames    atomic.Uint64
}

// Option customizes a [State] created by [New].
type Option func(st *State)

// WithRenderer sets the renderer, instead of a [raster.Renderer].
func WithRenderer(r render.Renderer) Option {
	return func(st *State) { st.Renderer = r }
}

// WithLoader sets the font loader, instead of a [text3d.FileLoader]
// on the working directory.
func WithLoader(ld text3d.Loader) Option {
	return func(st *State) { st.loader = ld }
}

// WithCorpus sets the quotes, instead of loading [Config.CorpusPath].
func WithCorpus(c quotes.Corpus) Option {
	return func(st *State) { st.corpus = c }
}

// WithRand sets the random source for placement.
func WithRand(rnd randx.Rand) Option {
	return func(st *State) { st.rand = rnd }
}

// WithMixer sets [State.Mixer].
func WithMixer(m Mixer) Option {
	return func(st *State) { st.Mixer = m }
}

// New creates the camera, renderer, controls and scene of a forest,
// appends the renderer and stats to the container and follows the
// size of the viewport. A nil cfg uses [NewConfig]; otherwise the
// forest keeps its own copy of cfg.
func New(container Container, viewport Viewport, sched Scheduler, cfg *Config, opts ...Option) (*State, error) {
	switch {
	case container == nil:
		return nil, fmt.Errorf("%w: no container", ErrEnvironmentUnavailable)
	case viewport == nil:
		return nil, fmt.Errorf("%w: no viewport", ErrEnvironmentUnavailable)
	case sched == nil:
		return nil, fmt.Errorf("%w: no scheduler", ErrEnvironmentUnavailable)
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()
	st := &State{Config: cfg, container: container, viewport: viewport, sched: sched}
	for _, opt := range opts {
		opt(st)
	}
	if st.Renderer == nil {
		st.Renderer = raster.New()
	}
	if st.loader == nil {
		st.loader = &text3d.FileLoader{}
	}
	if st.rand == nil {
		if cfg.Seed != 0 {
			st.rand = randx.NewSysRand(cfg.Seed)
		} else {
			st.rand = randx.NewGlobalRand()
		}
	}
	if st.corpus == nil {
		c, err := quotes.Load(context.Background(), cfg.CorpusPath)
		if err != nil {
			return nil, &AssetLoadError{Path: cfg.CorpusPath, Err: err}
		}
		st.corpus = c
	}

	st.initTime = sched.Now()
	st.Clock = NewClock(sched.Now)
	st.Stats = &stats.Stats{Now: sched.Now}
	st.Stats.Reset()

	w, h := viewport.Size()
	st.Camera = xyz.NewPerspectiveCamera(cfg.FOV, aspect(w, h), cfg.Near, cfg.Far)
	st.Camera.SetPosition(cfg.CameraStart)

	st.Renderer.SetPixelRatio(viewport.PixelRatio())
	st.Renderer.SetSize(w, h)
	st.Renderer.SetOutputEncoding(render.SRGB)
	container.Append(st.Renderer)
	container.Append(st.Stats)

	st.Scene = xyz.NewScene("forest")
	st.ApplyAtmosphere(cfg)

	st.Camera.SetPosition(cfg.CameraPos)

	st.Controls = controls.NewMapControls(st.Camera)
	st.Controls.Target = cfg.Target
	st.Controls.Update()
	st.Controls.EnablePan = true
	st.Controls.EnableDamping = true

	viewport.OnResize(st.Resize)
	slog.Debug("forest: initialized", "size", fmt.Sprintf("%dx%d", w, h), "quotes", len(st.corpus))
	return st, nil
}

func aspect(w, h int) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Resize matches the camera aspect ratio and the renderer size and
// pixel ratio to the current viewport. Empty sizes are ignored.
func (st *State) Resize() {
	w, h := st.viewport.Size()
	if w <= 0 || h <= 0 {
		slog.Debug("forest: ignoring empty viewport", "width", w, "height", h)
		return
	}
	st.Camera.Aspect = float32(w) / float32(h)
	st.Camera.UpdateProjectionMatrix()
	st.Renderer.SetPixelRatio(st.viewport.PixelRatio())
	st.Renderer.SetSize(w, h)
}

// ApplyAtmosphere sets the background, fog and ambient light from cfg,
// recording them in [State.Config].
func (st *State) ApplyAtmosphere(cfg *Config) {
	sc := st.Scene
	sc.SetBackground(cfg.Background)
	sc.Fog = xyz.NewFogExp2(cfg.FogColor, cfg.FogDensity)
	if st.ambient == nil {
		st.ambient = xyz.NewAmbientLight(sc, "ambient", cfg.AmbientColor, cfg.AmbientIntensity)
	} else {
		st.ambient.Color = colors.FromHex(cfg.AmbientColor)
		st.ambient.Intensity = cfg.AmbientIntensity
	}
	if cfg != st.Config {
		st.Config.Background = cfg.Background
		st.Config.FogColor = cfg.FogColor
		st.Config.FogDensity = cfg.FogDensity
		st.Config.AmbientColor = cfg.AmbientColor
		st.Config.AmbientIntensity = cfg.AmbientIntensity
	}
}

// Corpus returns the quotes the forest draws its text from.
func (st *State) Corpus() quotes.Corpus {
	return st.corpus
}
