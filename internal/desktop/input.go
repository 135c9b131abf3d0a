//go:build !android

package desktop

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"carousel/internal/carousel"
	"carousel/internal/scene"
	"carousel/internal/theme"
)

// input wires GLFW callbacks to the carousel. Cursor positions arrive in
// window coordinates, which is also the stage's coordinate space.
type input struct {
	window *glfw.Window
	router *scene.Router
	stage  *carousel.Stage
	toggle *theme.Toggle
	log    *slog.Logger
}

// bindInput installs the callbacks and returns a func that removes them.
func bindInput(window *glfw.Window, c *carousel.Carousel, toggle *theme.Toggle, log *slog.Logger) func() {
	in := &input{
		window: window,
		router: scene.NewRouter(c),
		stage:  c.Stage(),
		toggle: toggle,
		log:    log,
	}

	window.SetMouseButtonCallback(in.onMouseButton)
	window.SetCursorPosCallback(in.onCursorPos)
	window.SetKeyCallback(in.onKey)
	window.SetFocusCallback(in.onFocus)
	window.SetSizeCallback(in.onResize)

	return func() {
		window.SetMouseButtonCallback(nil)
		window.SetCursorPosCallback(nil)
		window.SetKeyCallback(nil)
		window.SetFocusCallback(nil)
		window.SetSizeCallback(nil)
	}
}

func (in *input) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		in.router.Press(x, y)
	case glfw.Release:
		in.router.Release(x, y)
	}
}

func (in *input) onCursorPos(_ *glfw.Window, x, y float64) {
	in.router.Motion(x, y)
}

func (in *input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	ctrl := mods&glfw.ModControl != 0
	super := mods&glfw.ModSuper != 0
	shift := mods&glfw.ModShift != 0
	if in.toggle == nil || key < glfw.KeyA || key > glfw.KeyZ {
		return
	}
	if !scene.IsThemeShortcut(rune(key), ctrl, super, shift) {
		return
	}
	origin := scene.ToStage(in.router.Last(), in.stage.Width, in.stage.Height)
	if err := in.toggle.Toggle(origin.X, origin.Y); err != nil {
		in.log.Warn("theme toggle failed", "error", err)
	}
}

func (in *input) onFocus(_ *glfw.Window, focused bool) {
	if !focused {
		in.router.Cancel()
	}
}

func (in *input) onResize(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	in.stage.Resize(float64(width), float64(height))
}
