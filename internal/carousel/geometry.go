package carousel

import "math"

// Point is an offset from the stage center in pixels, or a pointer position
// relative to the stage's top-left corner, depending on context.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Len() float64      { return hypot(p.X, p.Y) }

// EaseFunc maps linear progress in [0,1] onto eased progress.
type EaseFunc func(t float64) float64

// EaseOutCubic is used for ambient slides.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutQuint settles faster; used for pull-in gestures.
func EaseOutQuint(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}

// Geometry holds the placement math. It reads the stage size on every call so
// a resized window takes effect immediately.
type Geometry struct {
	stage *Stage
	rng   Source
}

func NewGeometry(stage *Stage, rng Source) *Geometry {
	return &Geometry{stage: stage, rng: rng}
}

// BoundaryDistance is the distance from the stage center to its border along
// angle (radians).
func (g *Geometry) BoundaryDistance(angle float64) float64 {
	hw := g.stage.Width / 2
	hh := g.stage.Height / 2
	cosA := math.Abs(math.Cos(angle))
	sinA := math.Abs(math.Sin(angle))
	if cosA*hh > sinA*hw {
		return hw / cosA
	}
	return hh / sinA
}

// OffscreenPositionByAngle returns the point OffscreenMargin pixels beyond the
// stage border along angle.
func (g *Geometry) OffscreenPositionByAngle(angle float64) Point {
	dist := g.BoundaryDistance(angle) + OffscreenMargin
	return Point{
		X: math.Cos(angle) * dist,
		Y: math.Sin(angle) * dist,
	}
}

// RandomStopPosition picks a resting point within ±25% of the stage size
// around the center.
func (g *Geometry) RandomStopPosition() Point {
	rangeX := g.stage.Width * StopRange
	rangeY := g.stage.Height * StopRange
	return Point{
		X: (g.rng.Float64() - 0.5) * 2 * rangeX,
		Y: (g.rng.Float64() - 0.5) * 2 * rangeY,
	}
}

func (g *Geometry) RandomRotation(maxDeg float64) float64 {
	return (g.rng.Float64() - 0.5) * 2 * maxDeg
}

func (g *Geometry) RandomAngle() float64 {
	return g.rng.Float64() * 2 * math.Pi
}

// InEdgeZone reports whether p (relative to the stage's top-left corner)
// lies within threshold (a fraction of width/height) of any border.
func (g *Geometry) InEdgeZone(p Point, threshold float64) bool {
	if g.stage.Width <= 0 || g.stage.Height <= 0 {
		return false
	}
	relX := p.X / g.stage.Width
	relY := p.Y / g.stage.Height
	return relX < threshold || relX > 1-threshold ||
		relY < threshold || relY > 1-threshold
}
