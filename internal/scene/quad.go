package scene

import (
	"math"

	"carousel/internal/carousel"
)

// FloatsPerVertex is x, y, u, v.
const FloatsPerVertex = 4

// Corners returns the corners of a w×h rectangle centred at the card's
// position and rotated with it, in stage coordinates (origin top-left).
// Order: top-left, top-right, bottom-right, bottom-left before rotation.
func Corners(t carousel.Transform, stageW, stageH, w, h float64) [4]carousel.Point {
	cx := stageW/2 + t.X
	cy := stageH/2 + t.Y
	rad := t.Rotation * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)

	local := [4]carousel.Point{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: -w / 2, Y: h / 2},
	}
	var out [4]carousel.Point
	for i, p := range local {
		out[i] = carousel.Point{
			X: cx + c*p.X - s*p.Y,
			Y: cy + s*p.X + c*p.Y,
		}
	}
	return out
}

// AppendQuad appends two triangles covering corners, with texture
// coordinates spanning the whole texture.
func AppendQuad(buf []float32, corners [4]carousel.Point) []float32 {
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		buf = append(buf, float32(corners[i].X), float32(corners[i].Y), uv[i][0], uv[i][1])
	}
	return buf
}

// Offset shifts every corner by (dx, dy).
func Offset(corners [4]carousel.Point, dx, dy float64) [4]carousel.Point {
	for i := range corners {
		corners[i].X += dx
		corners[i].Y += dy
	}
	return corners
}
