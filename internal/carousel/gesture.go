package carousel

import (
	"log/slog"
	"math"

	"carousel/internal/events"
)

type DragMode int

const (
	DragNone DragMode = iota
	DragPullIn
	DragPushOut
)

func (m DragMode) String() string {
	switch m {
	case DragPullIn:
		return "pull-in"
	case DragPushOut:
		return "push-out"
	}
	return "none"
}

// DragSession is the pointer interaction in progress. A nil session means no
// drag; otherwise it is a *PullIn or a *PushOut.
type DragSession interface {
	Mode() DragMode
	Card() *Card
}

// PullIn drags a new card in from a stage edge.
type PullIn struct {
	card      *Card
	Start     Point   // pointer position at pointer-down
	Angle     float64 // direction from the center toward the entry point
	Rotation  float64 // resting rotation; the card starts at twice this
	Offscreen Point
	Target    Point
	Progress  float64
}

func (s *PullIn) Mode() DragMode { return DragPullIn }
func (s *PullIn) Card() *Card    { return s.card }

// PushOut drags an existing card around, possibly throwing it off stage.
type PushOut struct {
	card   *Card
	Start  Point
	Base   Transform
	Delta  Point
	AtEdge bool
}

func (s *PushOut) Mode() DragMode { return DragPushOut }
func (s *PushOut) Card() *Card    { return s.card }

// GestureHooks connect the controller to the orchestrator.
type GestureHooks struct {
	Begin func()      // a drag started
	End   func()      // the drag was released
	Evict func(*Card) // a pull-in pushed the oldest card out of the registry
}

// Gestures turns pointer events into pull-in and push-out drags.
type Gestures struct {
	cfg   Config
	stage *Stage
	reg   *Registry
	anim  *Animator
	geo   *Geometry
	seq   *ImageSequence
	bus   *events.Bus
	log   *slog.Logger
	hooks GestureHooks

	session DragSession
}

func (g *Gestures) Session() DragSession { return g.session }
func (g *Gestures) Dragging() bool       { return g.session != nil }

func (g *Gestures) Mode() DragMode {
	if g.session == nil {
		return DragNone
	}
	return g.session.Mode()
}

// Card returns the card held by the current drag, or nil.
func (g *Gestures) Card() *Card {
	if g.session == nil {
		return nil
	}
	return g.session.Card()
}

// Down starts a drag at p (relative to the stage's top-left corner). It
// reports whether a session began.
func (g *Gestures) Down(p Point) bool {
	if g.session != nil {
		return false
	}
	if p.X < 0 || p.Y < 0 || p.X > g.stage.Width || p.Y > g.stage.Height {
		return false
	}

	atEdge := g.geo.InEdgeZone(p, EdgeThreshold)
	hit := g.hitTest(p)

	switch {
	case hit != nil && !atEdge:
		g.beginPushOut(hit, p)
	case atEdge:
		g.beginPullIn(p)
	default:
		return false
	}
	return true
}

func (g *Gestures) beginPushOut(card *Card, p Point) {
	g.hooks.Begin()
	g.session = &PushOut{
		card:  card,
		Start: p,
		Base:  card.Transform,
	}
	g.reg.BringToTop(card)
	g.log.Debug("push-out started", "card", card.ID, "x", card.X, "y", card.Y)
}

func (g *Gestures) beginPullIn(p Point) {
	g.hooks.Begin()

	center := g.stage.Center()
	angle := math.Atan2(center.Y-p.Y, center.X-p.X) + math.Pi
	rotation := g.geo.RandomRotation(SlideInRotation)

	card := NewCard(g.seq.Next())
	off := g.geo.OffscreenPositionByAngle(angle)
	card.Transform = Transform{X: off.X, Y: off.Y, Rotation: rotation * 2}
	target := g.geo.RandomStopPosition()

	evicted := g.reg.Add(card)
	g.stage.Attach(card)
	if evicted != nil {
		g.hooks.Evict(evicted)
	}

	g.session = &PullIn{
		card:      card,
		Start:     p,
		Angle:     angle,
		Rotation:  rotation,
		Offscreen: off,
		Target:    target,
	}
	g.log.Debug("pull-in started", "card", card.ID, "image", card.Image, "angle", angle)
}

// hitTest finds the card under p. The topmost card wins; otherwise the
// highest card in registry order. Cards still animating cannot be grabbed.
func (g *Gestures) hitTest(p Point) *Card {
	contains := func(c *Card) bool {
		if c == nil || c.Animating() {
			return false
		}
		return c.Bounds(g.stage.Width, g.stage.Height, g.cfg.CardWidth, g.cfg.CardHeight).Contains(p)
	}
	if top := g.reg.Top(); contains(top) {
		return top
	}
	for i := g.reg.Len() - 1; i >= 0; i-- {
		if c := g.reg.At(i); contains(c) {
			return c
		}
	}
	return nil
}

// Move applies interim feedback for the active drag.
func (g *Gestures) Move(p Point) {
	switch s := g.session.(type) {
	case *PullIn:
		g.movePullIn(s, p)
	case *PushOut:
		g.movePushOut(s, p)
	}
}

func (g *Gestures) movePullIn(s *PullIn, p Point) {
	d := p.Sub(s.Start)
	inAngle := s.Angle + math.Pi
	projection := d.X*math.Cos(inAngle) + d.Y*math.Sin(inAngle)

	progress := 0.0
	if total := s.Target.Sub(s.Offscreen).Len(); total > 0 {
		progress = clampF(projection/(total*PullInReach), 0, 1)
	}

	e := EaseOutQuint(progress)
	s.card.X = lerp(s.Offscreen.X, s.Target.X, e)
	s.card.Y = lerp(s.Offscreen.Y, s.Target.Y, e)
	s.card.Rotation = s.Rotation*2*(1-e) + s.Rotation*e
	s.Progress = progress
}

func (g *Gestures) movePushOut(s *PushOut, p Point) {
	d := p.Sub(s.Start)
	s.card.X = s.Base.X + d.X
	s.card.Y = s.Base.Y + d.Y
	tilt := 0.0
	if g.stage.Width > 0 {
		tilt = d.X / g.stage.Width * PushTiltDegrees
	}
	s.card.Rotation = s.Base.Rotation + tilt
	s.Delta = d
	s.AtEdge = g.geo.InEdgeZone(p, ThrowEdgeThreshold)
}

// Up resolves the active drag at release point p.
func (g *Gestures) Up(p Point) {
	s := g.session
	if s == nil {
		return
	}
	g.session = nil

	switch s := s.(type) {
	case *PullIn:
		g.releasePullIn(s)
	case *PushOut:
		g.releasePushOut(s, p)
	}
	g.hooks.End()
}

func (g *Gestures) releasePullIn(s *PullIn) {
	card := s.card
	if s.Progress > PullInCommit {
		to := Transform{X: s.Target.X, Y: s.Target.Y, Rotation: s.Rotation}
		d := scaleDuration(g.cfg.SlideDuration, 1-s.Progress)
		g.anim.Animate(card, card.Transform, to, d, EaseOutQuint).Then(func() {
			g.reg.BringToTop(card)
		})
		g.bus.Emit(events.Event{Type: events.PullInCommitted, CardID: card.ID.String(), Image: card.Image, X: to.X, Y: to.Y})
		g.log.Debug("pull-in committed", "card", card.ID, "progress", s.Progress)
		return
	}

	g.reg.Remove(card)
	to := Transform{X: s.Offscreen.X, Y: s.Offscreen.Y, Rotation: s.Rotation * 2}
	d := scaleDuration(g.cfg.SlideDuration, AbandonScale)
	g.anim.Animate(card, card.Transform, to, d, EaseOutQuint).Then(func() {
		g.stage.Detach(card)
	})
	g.seq.Rollback()
	g.bus.Emit(events.Event{Type: events.PullInAbandoned, CardID: card.ID.String(), Image: card.Image, X: card.X, Y: card.Y})
	g.log.Debug("pull-in abandoned", "card", card.ID, "progress", s.Progress)
}

func (g *Gestures) releasePushOut(s *PushOut, p Point) {
	s.AtEdge = g.geo.InEdgeZone(p, ThrowEdgeThreshold)
	dist := s.Delta.Len()
	if !s.AtEdge || dist <= ThrowMinDistance {
		g.log.Debug("push-out dropped", "card", s.card.ID, "distance", dist)
		return
	}

	card := s.card
	g.reg.Remove(card)
	angle := math.Atan2(s.Delta.Y, s.Delta.X)
	cur := card.Transform
	off := g.geo.OffscreenPositionByAngle(angle)
	to := Transform{
		X:        cur.X + off.X,
		Y:        cur.Y + off.Y,
		Rotation: cur.Rotation + g.geo.RandomRotation(ThrowRotation),
	}
	g.anim.Animate(card, cur, to, g.cfg.SlideDuration, EaseOutCubic).Then(func() {
		g.stage.Detach(card)
	})
	g.bus.Emit(events.Event{Type: events.Thrown, CardID: card.ID.String(), Image: card.Image, X: cur.X, Y: cur.Y})
	g.log.Debug("push-out thrown", "card", card.ID, "angle", angle, "distance", dist)
}

// Cancel drops the current session without resolving it.
func (g *Gestures) Cancel() {
	g.session = nil
}
