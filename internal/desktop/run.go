//go:build !android

// Package desktop is the GLFW/OpenGL front end: it owns the window, feeds
// pointer input to the carousel, renders the stage every frame and plays
// sound cues.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/events"
	"carousel/internal/imagecache"
	"carousel/internal/scene"
	"carousel/internal/theme"
)

type Options struct {
	Window   config.Window
	Carousel *carousel.Carousel
	Bus      *events.Bus
	Cache    *imagecache.Cache // optional; cards show placeholders without it
	Theme    *theme.Toggle
	Sound    bool
	Log      *slog.Logger
}

// Run opens the window and drives the carousel until the window is closed
// or ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, opts Options) error {
	if opts.Carousel == nil || opts.Bus == nil || opts.Theme == nil {
		return errors.New("desktop: carousel, bus and theme are required")
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(opts.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("window opened", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "width", opts.Window.Width, "height", opts.Window.Height)

	if opts.Sound {
		audio, err := NewAudio()
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "error", err)
		} else {
			audio.Attach(opts.Bus)
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	c := opts.Carousel
	cfg := c.Config()
	rend, err := NewRenderer(cfg.CardWidth, cfg.CardHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	tex := newTextures(opts.Cache)
	defer tex.Destroy()

	stage := c.Stage()
	if w, h := window.GetSize(); w > 0 && h > 0 {
		stage.Resize(float64(w), float64(h))
	}

	start := glfw.GetTime()

	fader := scene.NewFader(scene.PaletteFor(opts.Theme.Current()))
	var ripple *scene.Ripple
	opts.Bus.Subscribe(events.ThemeChanged, func(e events.Event) {
		now := scene.FrameTime(start, glfw.GetTime())
		pal := scene.PaletteFor(theme.Theme(e.Theme))
		fader.Retarget(pal, now)
		ripple = &scene.Ripple{
			Origin: carousel.Point{X: e.X, Y: e.Y},
			Start:  now,
			Color:  pal.Ripple,
		}
	})

	unbind := bindInput(window, c, opts.Theme, log)
	defer unbind()
	defer c.Close()

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			window.SetShouldClose(true)
			continue
		}
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		now := scene.FrameTime(start, glfw.GetTime())
		c.Update(now)

		pal := fader.At(now)
		rend.BeginFrame(pal, fbW, fbH, stage.Width, stage.Height)
		for _, card := range stage.PaintOrder() {
			rend.DrawCard(card, pal, tex.Get(card.Image))
		}
		if ripple != nil && !rend.DrawRipple(*ripple, now) {
			ripple = nil
		}

		window.SwapBuffers()
	}
	log.Info("window closed")
	return nil
}
