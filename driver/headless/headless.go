// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless is a host without a display, for tests and
// snapshots. It runs on virtual time: frames and timers only happen
// when the caller steps the app, and callbacks run on the calling
// goroutine, which is the host thread.
package headless

import (
	"context"
	"slices"
	"sync"
	"time"
)

// App is a virtual container, viewport and frame scheduler.
type App struct {

	// FrameInterval is the virtual time between frames.
	FrameInterval time.Duration

	mu       sync.Mutex
	now      time.Time
	width    int
	height   int
	ratio    float32
	elements []any
	resize   []func()
	frames   []func()
	posted   []func()
	timers   []timer
	stepped  uint64
	wake     chan struct{}
}

type timer struct {
	at  time.Time
	fun func()
}

// New returns an app with the given viewport size, a pixel ratio of 1
// and 60 frames per second of virtual time.
func New(width, height int) *App {
	return &App{
		FrameInterval: time.Second / 60,
		now:           time.Unix(0, 0),
		width:         width,
		height:        height,
		ratio:         1,
		wake:          make(chan struct{}, 1),
	}
}

// Append adds an element to the container.
func (a *App) Append(el any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.elements = append(a.elements, el)
}

// Elements returns the appended elements in order.
func (a *App) Elements() []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.elements)
}

func (a *App) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

func (a *App) PixelRatio() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ratio
}

// SetPixelRatio sets the device pixels per logical pixel.
func (a *App) SetPixelRatio(ratio float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ratio = ratio
}

func (a *App) OnResize(fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resize = append(a.resize, fun)
}

// Resize sets the viewport size and calls the resize listeners.
func (a *App) Resize(width, height int) {
	a.mu.Lock()
	a.width, a.height = width, height
	fs := slices.Clone(a.resize)
	a.mu.Unlock()
	for _, f := range fs {
		f()
	}
}

// Now returns the virtual time.
func (a *App) Now() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.now
}

func (a *App) RequestFrame(fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames = append(a.frames, fun)
}

// Post queues fun for the next [App.RunPosted]. It is safe to call
// from any goroutine.
func (a *App) Post(fun func()) {
	a.mu.Lock()
	a.posted = append(a.posted, fun)
	a.mu.Unlock()
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *App) AfterFunc(d time.Duration, fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timers = append(a.timers, timer{at: a.now.Add(d), fun: fun})
}

// RunPosted runs the callbacks posted so far, returning how many ran.
func (a *App) RunPosted() int {
	a.mu.Lock()
	fs := a.posted
	a.posted = nil
	a.mu.Unlock()
	for _, f := range fs {
		f()
	}
	return len(fs)
}

// Step advances virtual time by one frame interval: it runs posted
// callbacks, then the timers that are due, in time order, then the
// frame callbacks requested before this step.
func (a *App) Step() {
	a.RunPosted()
	a.mu.Lock()
	a.now = a.now.Add(a.FrameInterval)
	var due []timer
	a.timers = slices.DeleteFunc(a.timers, func(t timer) bool {
		if t.at.After(a.now) {
			return false
		}
		due = append(due, t)
		return true
	})
	fs := a.frames
	a.frames = nil
	a.stepped++
	a.mu.Unlock()

	slices.SortStableFunc(due, func(x, y timer) int { return x.at.Compare(y.at) })
	for _, t := range due {
		t.fun()
	}
	for _, f := range fs {
		f()
	}
}

// Advance steps until at least d of virtual time has passed.
func (a *App) Advance(d time.Duration) {
	end := a.Now().Add(d)
	for a.Now().Before(end) {
		a.Step()
	}
}

// Steps returns the number of frames stepped.
func (a *App) Steps() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stepped
}

// WaitFor runs posted callbacks as they arrive until done is closed or
// ctx is done. Virtual time does not advance.
func (a *App) WaitFor(ctx context.Context, done <-chan struct{}) error {
	for {
		a.RunPosted()
		select {
		case <-done:
			return nil
		default:
		}
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-a.wake:
		}
	}
}
