// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import "time"

// Mixer advances animations.
type Mixer interface {
	Update(delta float32)
}

// Clock measures the time between frames.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewClock returns a clock reading the given time source, started now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Delta returns the seconds since the previous call to Delta, or since
// the clock started.
func (c *Clock) Delta() float32 {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return float32(d.Seconds())
}

// Elapsed returns the seconds since the clock started.
func (c *Clock) Elapsed() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}

// Start starts the render loop. Only the first call has an effect.
func (st *State) Start() {
	st.startOnce.Do(func() {
		st.running = true
		st.sched.RequestFrame(st.tick)
	})
}

// Stop stops the render loop after the current frame.
func (st *State) Stop() {
	st.running = false
}

// Frames returns the number of frames rendered.
func (st *State) Frames() uint64 {
	return st.frames.Load()
}

// tick renders one frame and requests the next.
func (st *State) tick() {
	if !st.running {
		return
	}
	st.sched.RequestFrame(st.tick)
	delta := st.Clock.Delta()
	if st.Mixer != nil {
		st.Mixer.Update(delta)
	}
	st.Controls.Update()
	st.Stats.Update()
	for _, br := range st.Scene.BeforeRenderers() {
		br.OnBeforeRender(st.Renderer, st.Scene, st.Camera)
	}
	st.Renderer.Render(st.Scene, st.Camera)
	st.frames.Add(1)
}
