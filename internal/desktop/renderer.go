//go:build !android

package desktop

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"carousel/internal/carousel"
	"carousel/internal/scene"
)

const (
	modeFlat int32 = iota
	modeTexture
	modeRipple
)

// Card decoration in stage pixels.
const (
	cardBorder    = 10.0
	shadowOffsetX = 6.0
	shadowOffsetY = 9.0
	shadowAlpha   = 0.28
	rippleAlpha   = 0.3
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uTex        int32
	uColor      int32
	uMode       int32

	stageW, stageH float64
	cardW, cardH   float64

	// Reused per draw to avoid per-frame allocations.
	buf []float32
}

func NewRenderer(cardW, cardH float64) (*Renderer, error) {
	prog, err := linkProgram(stageVertSrc, stageFragSrc)
	if err != nil {
		return nil, fmt.Errorf("stage program: %w", err)
	}
	r := &Renderer{prog: prog, cardW: cardW, cardH: cardH}

	// Streaming buffer: one quad (6 vertices of x, y, u, v) per draw.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(scene.FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 6*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aUV (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uMode = gl.GetUniformLocation(prog, gl.Str("uMode\x00"))
	gl.Uniform1i(r.uTex, 0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// BeginFrame clears to the palette background. The framebuffer may be
// larger than the stage on HiDPI screens; the projection stays in stage
// pixels.
func (r *Renderer) BeginFrame(pal scene.Palette, fbW, fbH int, stageW, stageH float64) {
	r.stageW, r.stageH = stageW, stageH

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := pal.Background.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.Uniform2f(r.uResolution, float32(stageW), float32(stageH))
	gl.ActiveTexture(gl.TEXTURE0)
}

func (r *Renderer) drawQuad(corners [4]carousel.Point, mode int32, c scene.RGB, alpha float32) {
	r.buf = scene.AppendQuad(r.buf[:0], corners)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.buf)*4, gl.Ptr(r.buf))
	cr, cg, cb := c.Floats()
	gl.Uniform4f(r.uColor, cr, cg, cb, alpha)
	gl.Uniform1i(r.uMode, mode)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawCard paints the drop shadow, the frame and the photo (or a
// placeholder while tex is 0).
func (r *Renderer) DrawCard(card *carousel.Card, pal scene.Palette, tex uint32) {
	frame := scene.Corners(card.Transform, r.stageW, r.stageH, r.cardW, r.cardH)
	r.drawQuad(scene.Offset(frame, shadowOffsetX, shadowOffsetY), modeFlat, pal.Shadow, shadowAlpha)
	r.drawQuad(frame, modeFlat, pal.Frame, 1)

	photo := scene.Corners(card.Transform, r.stageW, r.stageH, r.cardW-2*cardBorder, r.cardH-2*cardBorder)
	if tex == 0 {
		r.drawQuad(photo, modeFlat, pal.Placeholder, 1)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	r.drawQuad(photo, modeTexture, scene.RGB{R: 255, G: 255, B: 255}, 1)
}

// DrawRipple paints the theme ripple at now and reports whether it is still
// running.
func (r *Renderer) DrawRipple(rp scene.Ripple, now time.Duration) bool {
	radius, alpha, done := rp.At(now)
	if done {
		return false
	}
	if radius <= 0 {
		return true
	}
	disc := scene.Corners(carousel.Transform{X: rp.Origin.X, Y: rp.Origin.Y}, r.stageW, r.stageH, 2*radius, 2*radius)
	r.drawQuad(disc, modeRipple, rp.Color, float32(alpha*rippleAlpha))
	return true
}
