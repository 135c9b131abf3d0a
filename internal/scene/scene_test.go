package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
	"carousel/internal/theme"
)

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, DarkPalette, PaletteFor(theme.Dark))
	assert.Equal(t, LightPalette, PaletteFor(theme.Light))
	assert.Equal(t, RGB{R: 13, G: 17, B: 23}, DarkPalette.Background)
}

func TestPaletteLerpEndpoints(t *testing.T) {
	assert.Equal(t, LightPalette, LightPalette.Lerp(DarkPalette, 0))
	assert.Equal(t, DarkPalette, LightPalette.Lerp(DarkPalette, 1))
	assert.Equal(t, RGB{R: 100, G: 100, B: 100}, LerpRGB(RGB{}, RGB{R: 200, G: 200, B: 200}, 0.5))
}

func TestRippleExpandsAndFades(t *testing.T) {
	r := Ripple{Start: time.Second}

	radius, alpha, done := r.At(time.Second)
	assert.Equal(t, 0.0, radius)
	assert.Equal(t, 1.0, alpha)
	assert.False(t, done)

	radius, alpha, done = r.At(time.Second + RippleDuration/2)
	assert.InDelta(t, RippleMaxRadius*0.875, radius, 1e-9)
	assert.InDelta(t, 0.125, alpha, 1e-9)
	assert.False(t, done)

	_, alpha, done = r.At(time.Second + RippleDuration)
	assert.True(t, done)
	assert.Equal(t, 0.0, alpha)
}

func TestFaderRetargetMidway(t *testing.T) {
	f := NewFader(LightPalette)
	assert.Equal(t, LightPalette, f.At(0))

	f.Retarget(DarkPalette, 0)
	mid := f.At(RippleDuration / 2)
	assert.NotEqual(t, LightPalette, mid)
	assert.NotEqual(t, DarkPalette, mid)

	f.Retarget(LightPalette, RippleDuration/2)
	assert.Equal(t, mid, f.At(RippleDuration/2), "retarget starts from the colour on screen")
	assert.Equal(t, LightPalette, f.At(RippleDuration*2))
}

func TestCornersUnrotated(t *testing.T) {
	c := Corners(carousel.Transform{X: 10, Y: -20}, 1000, 800, 260, 320)
	assert.Equal(t, carousel.Point{X: 380, Y: 220}, c[0])
	assert.Equal(t, carousel.Point{X: 640, Y: 220}, c[1])
	assert.Equal(t, carousel.Point{X: 640, Y: 540}, c[2])
	assert.Equal(t, carousel.Point{X: 380, Y: 540}, c[3])
}

func TestCornersQuarterTurn(t *testing.T) {
	c := Corners(carousel.Transform{Rotation: 90}, 100, 100, 20, 10)
	// Top-left (-10,-5) rotates to (5,-10).
	assert.InDelta(t, 55, c[0].X, 1e-9)
	assert.InDelta(t, 40, c[0].Y, 1e-9)
}

func TestAppendQuadAndOffset(t *testing.T) {
	corners := Offset(Corners(carousel.Transform{}, 10, 10, 2, 2), 1, 1)
	buf := AppendQuad(nil, corners)
	require.Len(t, buf, 6*FloatsPerVertex)
	assert.Equal(t, []float32{5, 5, 0, 0}, buf[:4])
	assert.Equal(t, []float32{5, 7, 0, 1}, buf[len(buf)-4:])
}

type recorder struct {
	calls []string
	last  carousel.Point
}

func (r *recorder) record(call string, p carousel.Point) {
	r.calls = append(r.calls, call)
	r.last = p
}

func (r *recorder) PointerDown(p carousel.Point) { r.record("down", p) }
func (r *recorder) PointerMove(p carousel.Point) { r.record("move", p) }
func (r *recorder) PointerUp(p carousel.Point)   { r.record("up", p) }

func TestRouterForwardsDragOnly(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)

	r.Motion(1, 1)
	r.Release(1, 1)
	assert.Empty(t, rec.calls, "hover and stray release are ignored")

	r.Press(10, 20)
	r.Press(11, 21)
	r.Motion(30, 40)
	r.Release(50, 60)

	assert.Equal(t, []string{"down", "move", "up"}, rec.calls)
	assert.Equal(t, carousel.Point{X: 50, Y: 60}, rec.last)
	assert.False(t, r.Pressed())
}

func TestRouterCancel(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)
	r.Press(1, 2)
	r.Motion(3, 4)
	r.Cancel()
	r.Cancel()

	assert.Equal(t, []string{"down", "move", "up"}, rec.calls)
	assert.Equal(t, carousel.Point{X: 3, Y: 4}, rec.last)
}

func TestIsThemeShortcut(t *testing.T) {
	assert.True(t, IsThemeShortcut('D', true, false, true))
	assert.True(t, IsThemeShortcut('d', false, true, true))
	assert.False(t, IsThemeShortcut('D', true, false, false))
	assert.False(t, IsThemeShortcut('D', false, false, true))
	assert.False(t, IsThemeShortcut('F', true, false, true))
}

func TestFrameTimeAndToStage(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, FrameTime(2, 3.5))
	assert.Equal(t, time.Duration(0), FrameTime(3, 2))
	assert.Equal(t, carousel.Point{X: -500, Y: 100}, ToStage(carousel.Point{X: 0, Y: 500}, 1000, 800))
}
