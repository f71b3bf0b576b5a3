// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats is a frame performance counter, reporting frames per
// second, milliseconds per frame and heap memory, each with its
// observed range.
package stats

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Panel is one measured quantity with its observed range.
type Panel struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`

	// Samples is the number of updates so far.
	Samples int `json:"samples"`
}

func newPanel(name string) Panel {
	return Panel{Name: name}
}

func (p *Panel) update(v float64) {
	p.Value = v
	if p.Samples == 0 {
		p.Min, p.Max = v, v
	} else {
		p.Min = min(p.Min, v)
		p.Max = max(p.Max, v)
	}
	p.Samples++
}

func (p Panel) String() string {
	if p.Samples == 0 {
		return "- " + p.Name
	}
	return fmt.Sprintf("%.0f %s (%.0f-%.0f)", p.Value, p.Name, p.Min, p.Max)
}

// Snapshot is a copy of the counter state.
type Snapshot struct {
	FPS    Panel  `json:"fps"`
	MS     Panel  `json:"ms"`
	MB     Panel  `json:"mb"`
	Frames uint64 `json:"frames"`

	// HeapBytes is the last sampled heap allocation.
	HeapBytes uint64 `json:"heapBytes"`
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("%v  %v  %s heap  %s frames", s.FPS, s.MS, humanize.Bytes(s.HeapBytes), humanize.Comma(int64(s.Frames)))
}

// Stats counts frames. Call [Stats.Begin] and [Stats.End] around the
// work of a frame, or just [Stats.Update] once per frame. The frame
// rate and memory are sampled once per second. It is safe to take
// snapshots from other goroutines.
type Stats struct {

	// Now is the time source; it defaults to [time.Now].
	Now func() time.Time

	mu        sync.Mutex
	fps       Panel
	ms        Panel
	mb        Panel
	heap      uint64
	total     uint64
	frames    int
	beginTime time.Time
	prevTime  time.Time
}

// New returns a new counter starting now.
func New() *Stats {
	s := &Stats{Now: time.Now}
	s.Reset()
	return s
}

// Reset clears all panels and restarts timing.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Now == nil {
		s.Now = time.Now
	}
	s.fps = newPanel("FPS")
	s.ms = newPanel("MS")
	s.mb = newPanel("MB")
	s.frames = 0
	s.total = 0
	s.beginTime = s.Now()
	s.prevTime = s.beginTime
}

// Begin marks the start of a frame.
func (s *Stats) Begin() {
	s.mu.Lock()
	s.beginTime = s.Now()
	s.mu.Unlock()
}

// End marks the end of a frame and returns the current time.
func (s *Stats) End() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	s.total++
	now := s.Now()
	s.ms.update(float64(now.Sub(s.beginTime)) / float64(time.Millisecond))
	if el := now.Sub(s.prevTime); el >= time.Second {
		s.fps.update(float64(s.frames) / el.Seconds())
		s.prevTime = now
		s.frames = 0
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		s.heap = m.HeapAlloc
		s.mb.update(float64(m.HeapAlloc) / (1 << 20))
	}
	return now
}

// Update ends the current frame and begins the next one.
func (s *Stats) Update() {
	t := s.End()
	s.mu.Lock()
	s.beginTime = t
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{FPS: s.fps, MS: s.ms, MB: s.mb, Frames: s.total, HeapBytes: s.heap}
}

// String returns the current snapshot, formatted.
func (s *Stats) String() string {
	return s.Snapshot().String()
}
