package carousel

import "time"

type Action int

const (
	ActionNone Action = iota
	ActionSlideIn
	ActionSlideOut
)

func (a Action) String() string {
	switch a {
	case ActionSlideIn:
		return "slide-in"
	case ActionSlideOut:
		return "slide-out"
	}
	return "none"
}

// ChooseAction picks the next autonomous move for a stage holding active out of
// capacity cards. rng is only consulted when both moves are allowed.
func ChooseAction(active, capacity int, rng Source) Action {
	switch {
	case active < MinActiveCards:
		return ActionSlideIn
	case active >= capacity:
		return ActionSlideOut
	case rng.Float64() < SlideInChance:
		return ActionSlideIn
	default:
		return ActionSlideOut
	}
}

// Autopilot is the idle timer. It never overlaps its own actions: while one
// is in flight the timer stays disarmed and Settle re-arms it.
type Autopilot struct {
	interval time.Duration
	deadline time.Duration
	armed    bool
	busy     bool
}

func NewAutopilot(interval time.Duration) *Autopilot {
	return &Autopilot{interval: interval}
}

// Start (re)arms the timer one interval after now. While an action is in
// flight the request is dropped; Settle arms the timer instead.
func (a *Autopilot) Start(now time.Duration) {
	if a.busy {
		return
	}
	a.armed = true
	a.deadline = now + a.interval
}

func (a *Autopilot) Stop() { a.armed = false }

func (a *Autopilot) Armed() bool { return a.armed }
func (a *Autopilot) Busy() bool  { return a.busy }

// Deadline is the time the armed timer fires.
func (a *Autopilot) Deadline() time.Duration { return a.deadline }

// Fire reports whether the timer expired at now, disarming it.
func (a *Autopilot) Fire(now time.Duration) bool {
	if !a.armed || now < a.deadline {
		return false
	}
	a.armed = false
	return true
}

// Begin marks an action in flight.
func (a *Autopilot) Begin() { a.busy = true }

// Settle ends the in-flight action and schedules the next tick.
func (a *Autopilot) Settle(now time.Duration) {
	a.busy = false
	a.Start(now)
}
