package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe(SlideIn, func(e Event) { got = append(got, "a:"+e.CardID) })
	b.Subscribe(SlideIn, func(e Event) { got = append(got, "b:"+e.CardID) })
	b.Subscribe(SlideOut, func(Event) { got = append(got, "wrong") })

	b.Emit(Event{Type: SlideIn, CardID: "x"})

	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestNilBusEmitIsNoop(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() { b.Emit(Event{Type: Thrown}) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "theme-changed", ThemeChanged.String())
	assert.Equal(t, "unknown", Type(99).String())
}
