package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimateAttachesBeforeFirstFrame(t *testing.T) {
	stage := NewStage(100, 100)
	an := NewAnimator(stage)
	card := NewCard("a")

	an.Animate(card, Transform{X: -10}, Transform{X: 10}, ms(100), EaseOutCubic)

	assert.True(t, card.Attached())
	assert.Equal(t, 1, stage.Len())
	assert.Equal(t, -10.0, card.X)
	assert.True(t, card.Animating())
}

func TestAnimateInterpolatesAndResolvesOnce(t *testing.T) {
	an := NewAnimator(NewStage(100, 100))
	card := NewCard("a")
	resolved := 0

	a := an.Animate(card, Transform{X: 0, Y: 0, Rotation: 0}, Transform{X: 100, Y: -40, Rotation: 8}, ms(800), EaseOutCubic)
	a.Then(func() { resolved++ })

	an.Update(ms(400))
	assert.InDelta(t, 87.5, card.X, 1e-9)
	assert.InDelta(t, -35, card.Y, 1e-9)
	assert.InDelta(t, 7, card.Rotation, 1e-9)
	assert.False(t, a.Done())

	an.Update(ms(799))
	assert.Equal(t, 0, resolved, "never resolves early")

	an.Update(ms(800))
	assert.Equal(t, 1, resolved)
	assert.True(t, a.Done())
	assert.Equal(t, Transform{X: 100, Y: -40, Rotation: 8}, card.Transform)
	assert.False(t, card.Animating())

	an.Update(ms(2000))
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 0, an.Len())
}

func TestThenOnFinishedAnimationRunsImmediately(t *testing.T) {
	an := NewAnimator(NewStage(100, 100))
	a := an.Animate(NewCard("a"), Transform{}, Transform{X: 1}, 0, nil)
	an.Update(ms(1))
	require.True(t, a.Done())

	ran := false
	a.Then(func() { ran = true })
	assert.True(t, ran)
}

func TestConcurrentAnimationsOnDifferentCards(t *testing.T) {
	an := NewAnimator(NewStage(100, 100))
	a, b := NewCard("a"), NewCard("b")

	an.Animate(a, Transform{}, Transform{X: 10}, ms(100), EaseOutCubic)
	an.Animate(b, Transform{}, Transform{Y: 10}, ms(200), EaseOutCubic)
	an.Update(ms(100))

	assert.Equal(t, 10.0, a.X)
	assert.False(t, a.Animating())
	assert.True(t, b.Animating())
	assert.Equal(t, 1, an.Len())
}

func TestSupersedingAnimationInheritsContinuations(t *testing.T) {
	an := NewAnimator(NewStage(100, 100))
	card := NewCard("a")
	var order []string

	first := an.Animate(card, Transform{}, Transform{X: 100}, ms(100), EaseOutCubic)
	first.Then(func() { order = append(order, "first") })
	an.Update(ms(50))

	second := an.Animate(card, card.Transform, Transform{X: -100}, ms(100), EaseOutCubic)
	second.Then(func() { order = append(order, "second") })

	an.Update(ms(100))
	assert.Empty(t, order, "superseded animation no longer resolves on its own")
	assert.False(t, first.Done())

	an.Update(ms(150))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, -100.0, card.X)
}

func TestContinuationMayStartAnimation(t *testing.T) {
	stage := NewStage(100, 100)
	an := NewAnimator(stage)
	card := NewCard("a")

	an.Animate(card, Transform{}, Transform{X: 10}, ms(10), EaseOutCubic).Then(func() {
		an.Animate(card, card.Transform, Transform{X: 20}, ms(10), EaseOutCubic).Then(func() {
			stage.Detach(card)
		})
	})

	an.Update(ms(10))
	assert.True(t, card.Animating())
	an.Update(ms(20))
	assert.Equal(t, 20.0, card.X)
	assert.False(t, card.Attached())
}
