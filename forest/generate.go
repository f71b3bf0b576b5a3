// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/quoteforest/base/randx"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/quotes"
	"cogentcore.org/quoteforest/text3d"
	"cogentcore.org/quoteforest/xyz"
)

// PillarSpec is the placement of one pillar.
type PillarSpec struct {

	// Pos is the center of the base, on the ground.
	Pos math32.Vector3

	// Scale is the size of the pillar.
	Scale math32.Vector3

	// Yaw is the rotation about y, in radians.
	Yaw float32
}

// SamplePillar returns a random pillar placement within the ranges of cfg.
func SamplePillar(cfg *Config, rnd randx.Rand) PillarSpec {
	x := randx.RangeGen(cfg.PositionRange, rnd)
	z := randx.RangeGen(cfg.PositionRange, rnd)
	h := randx.RangeGen(cfg.PillarHeight, rnd)
	return PillarSpec{
		Pos:   math32.Vec3(x, 0, z),
		Scale: math32.Vec3(cfg.PillarWidth, h, cfg.PillarWidth),
		Yaw:   randx.UniformGen(0, cfg.MaxYaw, rnd),
	}
}

// Generation is the progress of [State.Generate].
type Generation struct {
	done       chan struct{}
	positioned chan struct{}
	err        error
}

// Done is closed when the text pass has finished or failed.
func (g *Generation) Done() <-chan struct{} {
	return g.done
}

// Positioned is closed after [State.PositionText] has run for this
// generation.
func (g *Generation) Positioned() <-chan struct{} {
	return g.positioned
}

// Err returns the error that aborted the text pass, an [AssetLoadError]
// for a font that could not be loaded. It is nil before Done is closed.
func (g *Generation) Err() error {
	select {
	case <-g.done:
		return g.err
	default:
		return nil
	}
}

// Generate populates the scene. The pillars are added immediately and
// the render loop is started; the font is loaded in the background and
// the text is added on the host thread once it is available. Text
// entities are rested on the ground once the text pass is done, but not
// before [Config.PositionDelay] has passed since [New]. Generate only
// runs once; later calls return the first Generation.
func (st *State) Generate(ctx context.Context) *Generation {
	if st.gen != nil {
		return st.gen
	}
	g := &Generation{done: make(chan struct{}), positioned: make(chan struct{})}
	st.gen = g
	st.pillarPass()
	st.Start()

	path := st.Config.FontPath
	text3d.LoadAsync(ctx, st.loader, path, func(f text3d.Font, err error) {
		st.sched.Post(func() {
			st.finishGeneration(g, path, f, err)
		})
	})
	return g
}

func (st *State) finishGeneration(g *Generation, path string, f text3d.Font, err error) {
	if err != nil {
		g.err = &AssetLoadError{Path: path, Err: err}
		slog.Error("forest: text pass aborted", "err", g.err)
	} else {
		st.textPass(f)
		slog.Info("forest: generated", "pillars", len(st.Pillars), "texts", len(st.TextEntities))
	}
	close(g.done)

	position := func() {
		st.PositionText()
		close(g.positioned)
	}
	wait := st.Config.positionDelay() - st.sched.Now().Sub(st.initTime)
	if wait <= 0 {
		position()
		return
	}
	st.sched.AfterFunc(wait, position)
}

// pillarPass adds Config.PillarCount pillars sharing one box mesh,
// resting on the ground, with frozen poses.
func (st *State) pillarPass() {
	cfg := st.Config
	box := xyz.NewBox(st.Scene, "pillar", 1, 1, 1)
	box.Translate(math32.Vec3(0, 0.5, 0))
	mat := xyz.NewMaterial(cfg.PillarColor)
	mat.FlatShading = true
	for i := range cfg.PillarCount {
		p := SamplePillar(cfg, st.rand)
		sld := xyz.NewSolid(fmt.Sprintf("pillar-%d", i), box, mat)
		sld.Pose.Pos = p.Pos
		sld.Pose.Scale = p.Scale
		sld.SetAxisRotationRad(0, 1, 0, p.Yaw)
		sld.Pose.Freeze()
		st.Scene.Add(sld)
		st.Pillars = append(st.Pillars, p)
	}
}

// textPass adds the text entities selected by Config.TextPolicy.
func (st *State) textPass(f text3d.Font) {
	cfg := st.Config
	tp := &textPass{st: st, font: f, mat: xyz.NewMaterial(cfg.TextColor), meshes: map[string]*xyz.GenMesh{}}
	switch cfg.TextPolicy {
	case QuoteBlocks:
		vq := quotes.StackVertically(st.corpus)
		if len(vq) == 0 {
			return
		}
		for i := 0; i <= len(vq)/cfg.QuoteBlock; i++ {
			q := vq[randx.IntGen(len(vq), st.rand)]
			x := randx.RangeGen(cfg.PositionRange, st.rand)
			z := randx.RangeGen(cfg.PositionRange, st.rand)
			tp.add(fmt.Sprintf("quote-%d", i), q.Text, x, z)
		}
	case EveryNthPillar:
		for i, p := range st.Pillars {
			if i%cfg.MarkerEvery == 0 {
				tp.add(fmt.Sprintf("marker-%d", i), cfg.MarkerText, p.Pos.X, p.Pos.Z)
			}
		}
	}
}

// textPass holds the shared state of one text pass. Equal texts share
// one mesh.
type textPass struct {
	st     *State
	font   text3d.Font
	mat    xyz.Material
	meshes map[string]*xyz.GenMesh
}

// add adds one text entity at x, z on the ground with its point lights.
func (tp *textPass) add(name, text string, x, z float32) {
	st, cfg := tp.st, tp.st.Config
	ms := tp.meshes[text]
	if ms == nil {
		ms = text3d.NewTextGeometry(name, text, tp.font, &cfg.Text)
		tp.meshes[text] = ms
	}
	sld := xyz.NewSolid(name, ms, tp.mat)
	sld.SetPos(x, 0, z)
	sld.SetAxisRotationRad(0, 1, 0, randx.UniformGen(0, cfg.MaxYaw, st.rand))
	sld.SetScale(cfg.TextScale, cfg.TextScale, cfg.TextScale)
	st.TextEntities = append(st.TextEntities, st.Scene.Add(sld))

	at := math32.Vec3(x, 0, z)
	for i, off := range cfg.LightOffsets {
		pl := xyz.NewPointLight(st.Scene, fmt.Sprintf("%s-light-%d", name, i), cfg.LightColor, cfg.LightIntensity, cfg.LightDistance)
		pl.Pos = at.Add(off)
	}
}

// PositionText rests every text entity at a height of a tenth of its
// bounding radius, returning the number positioned. Entities that are
// missing from the scene or have no mesh break an invariant.
func (st *State) PositionText() int {
	n := 0
	for _, id := range st.TextEntities {
		sld, ok := st.Scene.SolidByID(id)
		if !ok {
			violated("text entity %d is not a solid in the scene", id)
			continue
		}
		r, ok := sld.BoundingRadius()
		if !ok {
			violated("text entity %d (%s) has no mesh", id, sld.Name)
			continue
		}
		sld.Pose.Pos.Y = r / 10
		n++
	}
	return n
}
