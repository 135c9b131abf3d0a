package scene

import (
	"time"

	"carousel/internal/carousel"
)

const (
	RippleDuration = 800 * time.Millisecond
	// RippleMaxRadius is reached at the end of the ripple; large enough to
	// cover any window from any origin.
	RippleMaxRadius = 1000.0
)

// Ripple is the expanding disc played when the theme changes. Origin is an
// offset from the stage center.
type Ripple struct {
	Origin carousel.Point
	Start  time.Duration
	Color  RGB
}

// At returns the disc radius and opacity at now. done is true once the
// ripple has faded out.
func (r Ripple) At(now time.Duration) (radius, alpha float64, done bool) {
	t := float64(now-r.Start) / float64(RippleDuration)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		return RippleMaxRadius, 0, true
	}
	e := carousel.EaseOutCubic(t)
	return RippleMaxRadius * e, 1 - e, false
}

// Fader crossfades between palettes after a theme change, finishing together
// with the ripple.
type Fader struct {
	from, to Palette
	start    time.Duration
}

func NewFader(p Palette) *Fader {
	return &Fader{from: p, to: p}
}

// Retarget starts a fade from the colour shown at now toward p.
func (f *Fader) Retarget(p Palette, now time.Duration) {
	f.from = f.At(now)
	f.to = p
	f.start = now
}

func (f *Fader) At(now time.Duration) Palette {
	t := float64(now-f.start) / float64(RippleDuration)
	if t >= 1 {
		return f.to
	}
	if t < 0 {
		t = 0
	}
	return f.from.Lerp(f.to, t)
}
