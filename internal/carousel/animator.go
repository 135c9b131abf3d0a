package carousel

import "time"

// Animation is a single timed transition of one card. Callers wait on it by
// registering continuations with Then; they run on the frame loop once the
// card reaches its destination.
type Animation struct {
	card     *Card
	from, to Transform
	start    time.Duration
	duration time.Duration
	ease     EaseFunc

	done       bool
	superseded bool
	then       []func()
}

// Then registers fn to run when the animation completes. On a finished
// animation fn runs immediately.
func (a *Animation) Then(fn func()) *Animation {
	if fn == nil {
		return a
	}
	if a.done {
		fn()
		return a
	}
	a.then = append(a.then, fn)
	return a
}

func (a *Animation) Done() bool  { return a.done }
func (a *Animation) Card() *Card { return a.card }

// step writes the transform for now and reports whether progress reached 1.
func (a *Animation) step(now time.Duration) bool {
	progress := 1.0
	if a.duration > 0 {
		progress = clampF(float64(now-a.start)/float64(a.duration), 0, 1)
	}
	a.card.Transform = lerpTransform(a.from, a.to, a.ease(progress))
	return progress >= 1
}

func (a *Animation) resolve() {
	if a.done || a.superseded {
		return
	}
	a.done = true
	if a.card.animation == a {
		a.card.animation = nil
	}
	fns := a.then
	a.then = nil
	for _, fn := range fns {
		fn()
	}
}

// Animator advances every in-flight animation once per frame.
type Animator struct {
	stage  *Stage
	now    time.Duration
	active []*Animation
}

func NewAnimator(stage *Stage) *Animator {
	return &Animator{stage: stage}
}

// Now is the timestamp of the latest frame.
func (an *Animator) Now() time.Duration { return an.now }

func (an *Animator) Len() int { return len(an.active) }

// Animate moves card from one transform to another over d. The card is put on
// stage first if it is not attached yet. An animation already driving the
// card is superseded: it stops writing and its continuations move over to the
// new animation.
func (an *Animator) Animate(card *Card, from, to Transform, d time.Duration, ease EaseFunc) *Animation {
	if ease == nil {
		ease = EaseOutCubic
	}
	card.Transform = from
	if !card.attached {
		an.stage.Attach(card)
	}
	a := &Animation{
		card:     card,
		from:     from,
		to:       to,
		start:    an.now,
		duration: d,
		ease:     ease,
	}
	if prev := card.animation; prev != nil && !prev.done {
		prev.superseded = true
		a.then = append(a.then, prev.then...)
		prev.then = nil
	}
	card.animation = a
	an.active = append(an.active, a)
	return a
}

// Update advances all animations to now and resolves the finished ones.
// Continuations may start new animations; those first move on the next frame.
func (an *Animator) Update(now time.Duration) {
	if now < an.now {
		now = an.now
	}
	an.now = now

	current := an.active
	an.active = make([]*Animation, 0, len(current))
	var finished []*Animation
	for _, a := range current {
		if a.superseded {
			continue
		}
		if a.step(now) {
			finished = append(finished, a)
			continue
		}
		an.active = append(an.active, a)
	}
	for _, a := range finished {
		a.resolve()
	}
}

func scaleDuration(d time.Duration, k float64) time.Duration {
	if k <= 0 {
		return 0
	}
	return time.Duration(float64(d) * k)
}
