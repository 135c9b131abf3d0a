package carousel

import (
	"sort"

	"carousel/internal/events"
)

// Stage is the visual area cards are positioned in. Its display list holds
// every attached card, including cards that already left the registry and
// are still animating off-screen.
type Stage struct {
	Width, Height float64

	cards []*Card
	bus   *events.Bus
}

func NewStage(width, height float64) *Stage {
	return &Stage{Width: width, Height: height}
}

func (s *Stage) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Center returns the stage center relative to its top-left corner.
func (s *Stage) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

func (s *Stage) Attach(c *Card) {
	if c == nil || c.attached {
		return
	}
	c.attached = true
	s.cards = append(s.cards, c)
	s.bus.Emit(events.Event{Type: events.CardAttached, CardID: c.ID.String(), Image: c.Image, X: c.X, Y: c.Y})
}

// Detach removes c from the display list. Detaching a card that is not on
// stage is a no-op.
func (s *Stage) Detach(c *Card) {
	if c == nil || !c.attached {
		return
	}
	c.attached = false
	for i, sc := range s.cards {
		if sc == c {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			break
		}
	}
	s.bus.Emit(events.Event{Type: events.CardDetached, CardID: c.ID.String(), Image: c.Image, X: c.X, Y: c.Y})
}

func (s *Stage) Len() int { return len(s.cards) }

// PaintOrder returns the attached cards bottom to top: by z rank, ties
// broken by attach order.
func (s *Stage) PaintOrder() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}
