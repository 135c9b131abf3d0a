package scene

import (
	"time"
	"unicode"

	"carousel/internal/carousel"
)

// Pointer receives stage-relative pointer events.
type Pointer interface {
	PointerDown(p carousel.Point)
	PointerMove(p carousel.Point)
	PointerUp(p carousel.Point)
}

// Router turns raw button and cursor callbacks into a single-pointer drag
// stream. Motion is only forwarded while the button is held.
type Router struct {
	target  Pointer
	pressed bool
	last    carousel.Point
}

func NewRouter(target Pointer) *Router {
	return &Router{target: target}
}

func (r *Router) Pressed() bool { return r.pressed }

// Last is the most recent cursor position.
func (r *Router) Last() carousel.Point { return r.last }

func (r *Router) Press(x, y float64) {
	r.last = carousel.Point{X: x, Y: y}
	if r.pressed {
		return
	}
	r.pressed = true
	r.target.PointerDown(r.last)
}

func (r *Router) Motion(x, y float64) {
	r.last = carousel.Point{X: x, Y: y}
	if r.pressed {
		r.target.PointerMove(r.last)
	}
}

func (r *Router) Release(x, y float64) {
	r.last = carousel.Point{X: x, Y: y}
	if !r.pressed {
		return
	}
	r.pressed = false
	r.target.PointerUp(r.last)
}

// Cancel releases a held button at the last known position, e.g. when the
// window loses focus mid-drag.
func (r *Router) Cancel() {
	if r.pressed {
		r.Release(r.last.X, r.last.Y)
	}
}

// IsThemeShortcut matches Ctrl+Shift+D, or Cmd+Shift+D on macOS.
func IsThemeShortcut(key rune, ctrl, super, shift bool) bool {
	return (ctrl || super) && shift && unicode.ToLower(key) == 'd'
}

// FrameTime converts two glfw.GetTime readings into the carousel clock.
func FrameTime(start, now float64) time.Duration {
	if now < start {
		return 0
	}
	return time.Duration((now - start) * float64(time.Second))
}

// ToStage converts a position relative to the stage's top-left corner into
// an offset from its center.
func ToStage(p carousel.Point, stageW, stageH float64) carousel.Point {
	return carousel.Point{X: p.X - stageW/2, Y: p.Y - stageH/2}
}
