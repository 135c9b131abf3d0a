package carousel

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedSource returns the same draw every time. With 0.5 every rotation is
// zero, every resting point is the stage center and every random angle is π.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// scriptedSource replays values in order, wrapping around.
type scriptedSource struct {
	values []float64
	idx    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

const (
	testStageW = 1000.0
	testStageH = 800.0
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Images = []string{"a.jpg", "b.jpg", "c.jpg"}
	cfg.MaxCards = 3
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func newTestCarousel(t *testing.T, cfg Config, src Source) *Carousel {
	t.Helper()
	c, err := New(cfg, NewStage(testStageW, testStageH), WithSource(src), WithLogger(discardLogger()))
	require.NoError(t, err)
	return c
}

// settledCard slides one card to the stage center and lets it rest.
func settledCard(t *testing.T, c *Carousel) *Card {
	t.Helper()
	c.SlideInFrom(0)
	c.Update(c.Now() + c.cfg.SlideDuration)
	cards := c.Cards()
	require.NotEmpty(t, cards)
	card := cards[len(cards)-1]
	require.False(t, card.Animating())
	return card
}
