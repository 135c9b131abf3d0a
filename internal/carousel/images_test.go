package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageSequenceIsPermutation(t *testing.T) {
	images := []string{"a", "b", "c", "d", "e"}
	seq := NewImageSequence(images, NewRand(7))

	assert.ElementsMatch(t, images, seq.Images())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, images, "input is not mutated")
}

func TestImageSequenceWrapsAndRollsBack(t *testing.T) {
	seq := NewImageSequence([]string{"a", "b"}, NewRand(1))
	order := seq.Images()

	assert.Equal(t, order[0], seq.Next())
	assert.Equal(t, order[1], seq.Next())
	assert.Equal(t, order[0], seq.Next(), "wraps around")
	assert.Equal(t, 3, seq.Cursor())

	seq.Rollback()
	assert.Equal(t, order[0], seq.Next(), "rolled back image is offered again")
}

func TestImageSequenceRollbackClampsAtZero(t *testing.T) {
	seq := NewImageSequence([]string{"a"}, fixedSource(0.5))
	seq.Rollback()
	assert.Equal(t, 0, seq.Cursor())
	assert.Equal(t, "a", seq.Next())
}

func TestImageSequenceSameSeedSameOrder(t *testing.T) {
	images := []string{"a", "b", "c", "d", "e", "f"}
	assert.Equal(t,
		NewImageSequence(images, NewRand(99)).Images(),
		NewImageSequence(images, NewRand(99)).Images())
}

func TestImageSequenceEmpty(t *testing.T) {
	seq := NewImageSequence(nil, NewRand(1))
	assert.Equal(t, "", seq.Next())
}
