// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(android || ios || js || offscreen)

// Package desktop is a windowed host backed by ebiten. The ebiten game
// loop is the host thread: posted callbacks, frame callbacks and input
// handling all run in [App.Update], and the last rendered frame is
// presented in [App.Draw].
package desktop

import (
	"context"
	"fmt"
	"image"
	"slices"
	"sync"
	"time"

	"cogentcore.org/quoteforest/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Imager is an appended element whose image is presented every frame,
// such as a renderer.
type Imager interface {
	Image() *image.RGBA
}

// App is an ebiten window acting as a container, viewport and frame
// scheduler.
type App struct {

	// Title is the window title.
	Title string

	// Controls, if set, receive the pointer and keyboard input.
	Controls *controls.MapControls

	// ShowStats draws the last appended [fmt.Stringer], such as frame
	// stats, in the corner of the window.
	ShowStats bool

	mu       sync.Mutex
	width    int
	height   int
	ratio    float32
	elements []any
	resize   []func()
	frames   []func()
	posted   []func()

	ctx    context.Context
	screen *ebiten.Image
	input  input
}

// New returns an app whose window starts at the given size. The pixel
// ratio is 1 until the window is laid out.
func New(title string, width, height int) *App {
	return &App{Title: title, width: width, height: height, ratio: 1}
}

func (a *App) Append(el any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.elements = append(a.elements, el)
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

func (a *App) OnResize(fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resize = append(a.resize, fun)
}

func (a *App) Now() time.Time {
	return time.Now()
}

func (a *App) RequestFrame(fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames = append(a.frames, fun)
}

// Post queues fun to run on the game loop. It is safe to call from
// any goroutine.
func (a *App) Post(fun func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.posted = append(a.posted, fun)
}

func (a *App) AfterFunc(d time.Duration, fun func()) {
	time.AfterFunc(d, func() { a.Post(fun) })
}

// Run opens the window and runs the game loop until the window is
// closed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	w, h := a.Size()
	ebiten.SetWindowTitle(a.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(a)
}

// Update runs posted callbacks, handles input and then runs the
// frame callbacks.
func (a *App) Update() error {
	if a.ctx != nil && a.ctx.Err() != nil {
		return ebiten.Termination
	}
	a.mu.Lock()
	posted := a.posted
	a.posted = nil
	a.mu.Unlock()
	for _, f := range posted {
		f()
	}

	if a.Controls != nil {
		_, h := a.Size()
		a.input.apply(a.Controls, h)
	}

	a.mu.Lock()
	frames := a.frames
	a.frames = nil
	a.mu.Unlock()
	for _, f := range frames {
		f()
	}
	return nil
}

// Draw presents the image of the first [Imager] element.
func (a *App) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	els := slices.Clone(a.elements)
	a.mu.Unlock()

	for _, el := range els {
		im, ok := el.(Imager)
		if !ok {
			continue
		}
		img := im.Image()
		b := img.Bounds()
		if b.Empty() {
			break
		}
		if a.screen == nil || a.screen.Bounds().Size() != b.Size() {
			if a.screen != nil {
				a.screen.Deallocate()
			}
			a.screen = ebiten.NewImage(b.Dx(), b.Dy())
		}
		a.screen.WritePixels(img.Pix)
		op := &ebiten.DrawImageOptions{}
		sb := screen.Bounds()
		op.GeoM.Scale(float64(sb.Dx())/float64(b.Dx()), float64(sb.Dy())/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(a.screen, op)
		break
	}

	if !a.ShowStats {
		return
	}
	for _, el := range slices.Backward(els) {
		if s, ok := el.(fmt.Stringer); ok {
			ebitenutil.DebugPrint(screen, s.String())
			break
		}
	}
}

// Layout records the window size, calling the resize listeners when it
// changes, and lays the screen out in device pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := float32(ebiten.Monitor().DeviceScaleFactor())
	a.mu.Lock()
	changed := outsideWidth != a.width || outsideHeight != a.height || ratio != a.ratio
	a.width, a.height, a.ratio = outsideWidth, outsideHeight, ratio
	fs := slices.Clone(a.resize)
	a.mu.Unlock()
	if changed {
		for _, f := range fs {
			f()
		}
	}
	return max(int(float32(outsideWidth)*ratio), 1), max(int(float32(outsideHeight)*ratio), 1)
}
