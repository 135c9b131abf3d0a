package carousel

import (
	"math"

	"github.com/google/uuid"
)

// Transform is the authoritative placement of a card: offset from the stage
// center in pixels and rotation in degrees.
type Transform struct {
	X, Y     float64
	Rotation float64
}

func (t Transform) Pos() Point { return Point{X: t.X, Y: t.Y} }

func lerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		X:        lerp(a.X, b.X, t),
		Y:        lerp(a.Y, b.Y, t),
		Rotation: lerp(a.Rotation, b.Rotation, t),
	}
}

type Card struct {
	ID    uuid.UUID
	Image string
	Transform
	Z int

	attached  bool
	animation *Animation // in-flight animation, nil when at rest
}

func NewCard(image string) *Card {
	return &Card{ID: uuid.New(), Image: image}
}

func (c *Card) Attached() bool { return c.attached }

// Animating reports whether an animation currently drives the card.
func (c *Card) Animating() bool { return c.animation != nil }

// HitRect is the axis-aligned bounding box of the rotated card, relative to
// the stage's top-left corner.
type HitRect struct {
	X, Y, Width, Height float64
}

func (r HitRect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Bounds returns the card's rotated bounding box on a stage of the given size.
func (c *Card) Bounds(stageW, stageH, cardW, cardH float64) HitRect {
	rad := c.Rotation * math.Pi / 180
	cosA := math.Abs(math.Cos(rad))
	sinA := math.Abs(math.Sin(rad))
	w := cardW*cosA + cardH*sinA
	h := cardW*sinA + cardH*cosA
	cx := stageW/2 + c.X
	cy := stageH/2 + c.Y
	return HitRect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
