// Package carousel implements the photo card carousel: cards drift onto the
// stage from random directions, rest, and drift off again, either on the
// autopilot timer or under a single pointer (pull a new card in from an edge,
// push or throw an existing one).
//
// Everything runs on the caller's frame loop. Update advances animations and
// the autopilot; the pointer methods drive gestures. None of the methods are
// safe for concurrent use.
package carousel

import (
	"fmt"
	"log/slog"
	"time"

	"carousel/internal/events"
)

// Preloader warms up image data ahead of the first slide-in.
type Preloader interface {
	Preload(images []string)
}

type Option func(*Carousel)

func WithLogger(l *slog.Logger) Option {
	return func(c *Carousel) { c.log = l }
}

// WithSource replaces the clock-seeded RNG.
func WithSource(src Source) Option {
	return func(c *Carousel) { c.rng = src }
}

func WithBus(b *events.Bus) Option {
	return func(c *Carousel) { c.bus = b }
}

func WithPreloader(p Preloader) Option {
	return func(c *Carousel) { c.preload = p }
}

// Carousel owns the registry, animator, autopilot and gesture controller and
// arbitrates between them.
type Carousel struct {
	cfg     Config
	log     *slog.Logger
	rng     Source
	bus     *events.Bus
	preload Preloader

	stage    *Stage
	reg      *Registry
	anim     *Animator
	geo      *Geometry
	seq      *ImageSequence
	auto     *Autopilot
	gestures *Gestures

	closed bool
}

// New builds a carousel on stage, shuffles the image list, starts preloading
// and arms the autopilot.
func New(cfg Config, stage *Stage, opts ...Option) (*Carousel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new carousel: %w", err)
	}
	if stage == nil {
		return nil, fmt.Errorf("new carousel: %w: nil stage", ErrInvalidConfig)
	}

	c := &Carousel{
		cfg:   cfg,
		stage: stage,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.rng == nil {
		c.rng = NewRand(uint64(time.Now().UnixNano()))
	}
	stage.bus = c.bus

	c.reg = NewRegistry(cfg.MaxCards)
	c.anim = NewAnimator(stage)
	c.geo = NewGeometry(stage, c.rng)
	c.seq = NewImageSequence(cfg.Images, c.rng)
	c.auto = NewAutopilot(cfg.AutoInterval)
	c.gestures = &Gestures{
		cfg:   cfg,
		stage: stage,
		reg:   c.reg,
		anim:  c.anim,
		geo:   c.geo,
		seq:   c.seq,
		bus:   c.bus,
		log:   c.log,
		hooks: GestureHooks{
			Begin: c.auto.Stop,
			End:   func() { c.auto.Start(c.anim.Now()) },
			Evict: func(card *Card) { c.slideOut(card, c.geo.RandomAngle()) },
		},
	}

	if c.preload != nil {
		c.preload.Preload(c.seq.Images())
	}
	c.auto.Start(c.anim.Now())
	c.log.Info("carousel started",
		"images", len(cfg.Images),
		"max_cards", cfg.MaxCards,
		"auto_interval", cfg.AutoInterval,
		"slide_duration", cfg.SlideDuration,
	)
	return c, nil
}

func (c *Carousel) Config() Config         { return c.cfg }
func (c *Carousel) Stage() *Stage          { return c.stage }
func (c *Carousel) Registry() *Registry    { return c.reg }
func (c *Carousel) Autopilot() *Autopilot  { return c.auto }
func (c *Carousel) Images() *ImageSequence { return c.seq }
func (c *Carousel) Session() DragSession   { return c.gestures.Session() }
func (c *Carousel) Dragging() bool         { return c.gestures.Dragging() }
func (c *Carousel) Now() time.Duration     { return c.anim.Now() }
func (c *Carousel) Cards() []*Card         { return c.reg.Cards() }
func (c *Carousel) Top() *Card             { return c.reg.Top() }
func (c *Carousel) Closed() bool           { return c.closed }
func (c *Carousel) Geometry() *Geometry    { return c.geo }
func (c *Carousel) InFlight() int          { return c.anim.Len() }

// Update advances the carousel to now (time since the carousel started).
func (c *Carousel) Update(now time.Duration) {
	if c.closed {
		return
	}
	c.anim.Update(now)
	if c.auto.Fire(c.anim.Now()) {
		c.autoAction()
	}
}

func (c *Carousel) PointerDown(p Point) {
	if c.closed {
		return
	}
	c.gestures.Down(p)
}

func (c *Carousel) PointerMove(p Point) {
	if c.closed {
		return
	}
	c.gestures.Move(p)
}

func (c *Carousel) PointerUp(p Point) {
	if c.closed {
		return
	}
	c.gestures.Up(p)
}

// Close stops the autopilot and drops any drag. Later calls to Update and the
// pointer methods are ignored.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.auto.Stop()
	c.gestures.Cancel()
	c.log.Info("carousel closed", "cards", c.reg.Len())
}

// SlideIn brings a new card in from a random direction.
func (c *Carousel) SlideIn() {
	c.SlideInFrom(c.geo.RandomAngle())
}

// SlideInFrom brings a new card in from the off-screen point at angle. At
// capacity the oldest card slides out first.
func (c *Carousel) SlideInFrom(angle float64) {
	if c.closed {
		return
	}
	c.slideIn(angle, nil)
}

// SlideOut sends card off stage in a random direction.
func (c *Carousel) SlideOut(card *Card) *Animation {
	if c.closed || card == nil {
		return nil
	}
	return c.slideOut(card, c.geo.RandomAngle())
}

func (c *Carousel) autoAction() {
	if c.gestures.Dragging() {
		c.auto.Start(c.anim.Now())
		return
	}

	action := ChooseAction(c.reg.Len(), c.reg.Max(), c.rng)
	c.log.Debug("autopilot", "action", action, "cards", c.reg.Len())

	c.auto.Begin()
	settle := func() { c.auto.Settle(c.anim.Now()) }
	switch action {
	case ActionSlideIn:
		c.slideIn(c.geo.RandomAngle(), settle)
	case ActionSlideOut:
		if oldest := c.reg.Oldest(); oldest != nil {
			c.slideOut(oldest, c.geo.RandomAngle()).Then(settle)
			return
		}
		settle()
	default:
		settle()
	}
}

// slideIn makes room when the registry is full, then enters a new card.
// done runs once the new card has settled (or the slide-in was dropped).
func (c *Carousel) slideIn(angle float64, done func()) {
	if !c.reg.Full() {
		c.enter(angle, done)
		return
	}
	victim := c.reg.OldestExcept(c.gestures.Card())
	if victim == nil {
		// The only card on a single-card stage is under the pointer.
		c.log.Debug("slide-in dropped, stage held by drag")
		if done != nil {
			done()
		}
		return
	}
	c.slideOut(victim, c.geo.RandomAngle()).Then(func() {
		c.slideIn(angle, done)
	})
}

func (c *Carousel) enter(angle float64, done func()) {
	rotation := c.geo.RandomRotation(SlideInRotation)
	from := c.geo.OffscreenPositionByAngle(angle)
	to := c.geo.RandomStopPosition()

	card := NewCard(c.seq.Next())
	card.Transform = Transform{X: from.X, Y: from.Y, Rotation: rotation * 2}
	c.reg.Add(card)
	c.bus.Emit(events.Event{Type: events.SlideIn, CardID: card.ID.String(), Image: card.Image, X: to.X, Y: to.Y})

	c.anim.Animate(card, card.Transform, Transform{X: to.X, Y: to.Y, Rotation: rotation}, c.cfg.SlideDuration, EaseOutCubic).Then(done)
}

// slideOut takes card out of the registry right away and off the stage once
// it has left the visible area.
func (c *Carousel) slideOut(card *Card, angle float64) *Animation {
	to := c.geo.OffscreenPositionByAngle(angle)
	cur := card.Transform
	exit := Transform{X: to.X, Y: to.Y, Rotation: cur.Rotation + c.geo.RandomRotation(SlideOutRotation)}

	c.reg.Remove(card)
	c.bus.Emit(events.Event{Type: events.SlideOut, CardID: card.ID.String(), Image: card.Image, X: cur.X, Y: cur.Y})

	return c.anim.Animate(card, cur, exit, c.cfg.SlideDuration, EaseOutCubic).Then(func() {
		c.stage.Detach(card)
	})
}
