// Package events is a small typed publish/subscribe bus shared by the
// carousel core, the theme toggle and the desktop front end.
package events

import "sync"

type Type int

const (
	CardAttached Type = iota
	CardDetached
	SlideIn
	SlideOut
	PullInCommitted
	PullInAbandoned
	Thrown
	ThemeChanged
)

func (t Type) String() string {
	switch t {
	case CardAttached:
		return "card-attached"
	case CardDetached:
		return "card-detached"
	case SlideIn:
		return "slide-in"
	case SlideOut:
		return "slide-out"
	case PullInCommitted:
		return "pull-in-committed"
	case PullInAbandoned:
		return "pull-in-abandoned"
	case Thrown:
		return "thrown"
	case ThemeChanged:
		return "theme-changed"
	}
	return "unknown"
}

type Event struct {
	Type Type
	X, Y float64 // Stage-center offset where it applies.

	CardID string
	Image  string
	Theme  string // ThemeChanged only.
}

type Handler func(Event)

// Bus dispatches synchronously on the publisher's goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

func (b *Bus) Subscribe(t Type, fn Handler) {
	b.mu.Lock()
	b.handlers[t] = append(b.handlers[t], fn)
	b.mu.Unlock()
}

func (b *Bus) Emit(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	hs := b.handlers[e.Type]
	b.mu.RUnlock()
	for _, fn := range hs {
		fn(e)
	}
}
